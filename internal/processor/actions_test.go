package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractActionItemsDueDate(t *testing.T) {
	items := ExtractActionItems(SplitSentences("Please send the report by 2024-05-01."), DefaultCuePatterns())

	require.Len(t, items, 1)
	assert.Equal(t, ActionItem{Task: "Please send the report by 2024-05-01.", Due: "2024-05-01"}, items[0])
}

func TestExtractActionItemsDeduplicatesInFirstSeenOrder(t *testing.T) {
	text := "Please send the file. Thanks for lunch. Can you call me? Please send the file. We should meet."
	items := ExtractActionItems(SplitSentences(text), DefaultCuePatterns())

	assert.Equal(t, []ActionItem{
		{Task: "Please send the file."},
		{Task: "Can you call me?"},
		{Task: "We should meet."},
	}, items)
}

func TestExtractActionItemsEmpty(t *testing.T) {
	items := ExtractActionItems(nil, DefaultCuePatterns())
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items = ExtractActionItems(SplitSentences("The weather is nice. Lunch was good."), DefaultCuePatterns())
	assert.Empty(t, items)
}

func TestMatchCue(t *testing.T) {
	cues := DefaultCuePatterns()

	tests := []struct {
		sentence string
		want     string
		match    bool
	}{
		{"Please review the draft.", "please", true},
		{"Kindly advise.", "kindly", true},
		{"Can you take a look?", "can-you", true},
		{"COULD YOU help out?", "could-you", true},
		{"I need to leave early.", "need-to", true},
		{"We should talk.", "we-should", true},
		{"The action plan is ready.", "action", true},
		{"Our ETA is 5/12 for this.", "eta", true},
		{"Done by March 3 at the latest", "eta", true},
		{"Approve the budget", "imperative", true},
		{"Please call me", "imperative", true},
		{"The weather is nice.", "", false},
		{"We rescheduled it.", "", false},
		{"please help", "", false},
	}

	for _, tt := range tests {
		name, ok := MatchCue(tt.sentence, cues)
		assert.Equal(t, tt.match, ok, tt.sentence)
		assert.Equal(t, tt.want, name, tt.sentence)
	}
}

func TestMatchCueFirstMatchWins(t *testing.T) {
	name, ok := MatchCue("Please send the slides.", DefaultCuePatterns())
	assert.True(t, ok)
	assert.Equal(t, "please", name)
}

func TestExtractDueDate(t *testing.T) {
	tests := []struct {
		sentence string
		want     string
	}{
		{"Please send the report by 2024-05-01.", "2024-05-01"},
		{"Send it by May 5 please.", "May 5"},
		{"Call BY JUNE 3.", "JUNE 3"},
		{"Confirm by 12/05.", "12/05"},
		{"Review it by Friday.", ""},
		{"Review by sept 30 and by 2024-10-01.", "sept 30"},
		{"Deploy by January 155.", ""},
		{"Please send it by May 1st.", "May 1"},
		{"Share the notes by June 15th.", "June 15"},
		{"Reply by Aug 22nd or sooner.", "Aug 22"},
		{"Fix it by March 3rdly.", ""},
		{"Standby May 5.", ""},
		{"No date here.", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractDueDate(tt.sentence), tt.sentence)
	}
}
