package digest

import (
	"fmt"
	"strings"

	"github.com/wgomg/sumario/internal/config"
	"github.com/wgomg/sumario/internal/processor"
)

// DisplaySummary is the summary as shown to a reader. An empty offline summary
// means the body had nothing to summarize; an empty one from the model means
// the model returned none.
func (r *Result) DisplaySummary() string {
	switch {
	case r.Summary != "":
		return r.Summary
	case r.Mode == config.ModeAI:
		return NoModelSummary
	default:
		return NoSummaryPlaceholder
	}
}

// FormatItem renders an action item as "task (Due: due)".
func FormatItem(it processor.ActionItem) string {
	if it.Due == "" {
		return it.Task
	}
	return fmt.Sprintf("%s (Due: %s)", it.Task, it.Due)
}

// PlainText is the copy-to-clipboard rendering of a result.
func (r *Result) PlainText() string {
	var b strings.Builder
	b.WriteString("Summary:\n")
	b.WriteString(r.DisplaySummary())
	b.WriteString("\n\nAction Items:\n")

	if len(r.Items) == 0 {
		b.WriteString("(none)")
		return b.String()
	}

	lines := make([]string, len(r.Items))
	for i, it := range r.Items {
		lines[i] = "- " + FormatItem(it)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}
