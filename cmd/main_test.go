package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/sumario/internal/digest"
)

const emailText = "Hi team. We finished the draft. Please review it by Friday. Thanks!"

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SUMMARY_MODE", "offline")
	t.Setenv("APP_LOG_LEVEL", "error")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestSummarizeText(t *testing.T) {
	out, err := runCmd(t, emailText, "summarize", "-n", "2")
	require.NoError(t, err)

	assert.Equal(t,
		"Summary:\nHi team. Please review it by Friday.\n\nAction Items:\n- Please review it by Friday.\n\nMode: Offline\n",
		out)
}

func TestSummarizeKeepsAddressesInPlainText(t *testing.T) {
	out, err := runCmd(t, "Hi team. Please email John <john@x.com> by May 1st.", "summarize")
	require.NoError(t, err)

	assert.Equal(t,
		"Summary:\nHi team. Please email John <john@x.com> by May 1st.\n\nAction Items:\n"+
			"- Please email John <john@x.com> by May 1st. (Due: May 1)\n\nMode: Offline\n",
		out)
}

func TestSummarizeJSON(t *testing.T) {
	out, err := runCmd(t, "<p>Hi team.</p><p>Please send the invoice by 2024-05-01.</p>", "summarize", "--format", "json")
	require.NoError(t, err)

	var result digest.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Hi team. Please send the invoice by 2024-05-01.", result.Summary)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "2024-05-01", result.Items[0].Due)
}

func TestSummarizeRejectsBadFlags(t *testing.T) {
	_, err := runCmd(t, emailText, "summarize", "--format", "yaml")
	assert.Error(t, err)

	_, err = runCmd(t, emailText, "summarize", "--mode", "magic")
	assert.Error(t, err)
}

func TestHighlightCmd(t *testing.T) {
	out, err := runCmd(t, "<p>Hi team.</p><p>Please review it by Friday.</p>", "highlight")
	require.NoError(t, err)

	assert.Equal(t,
		"<p>Hi team.</p><p><span class=\"ai-sum-highlight\">Please review it by Friday.</span></p>\n",
		out)
}
