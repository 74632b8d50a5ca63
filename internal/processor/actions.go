package processor

import (
	"regexp"
	"strings"
)

// An ordinal suffix on the day ("May 1st") is accepted but not part of the date.
var dueDatePattern = regexp.MustCompile(
	`(?i)\bby\s+(?:((?:` + monthNames + `)\s+\d{1,2})(?:st|nd|rd|th)?\b|(\d{1,2}/\d{1,2})\b|(\d{4}-\d{2}-\d{2})\b)`,
)

const monthNames = "january|february|march|april|may|june|july|august|september|october|november|december|" +
	"jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec"

// ExtractActionItems flags every sentence matched by a cue and attaches the due
// date token found after "by", if any. Items are unique by task text and keep the
// order in which they first appear.
func ExtractActionItems(sentences []Sentence, cues []CuePattern) []ActionItem {
	tasks := NewOrderedSet[string]()
	for _, s := range sentences {
		task := strings.TrimSpace(s.Text)
		if task == "" {
			continue
		}
		if _, ok := MatchCue(task, cues); ok {
			tasks.Add(task)
		}
	}

	items := make([]ActionItem, 0, tasks.Len())
	for _, task := range tasks.Values() {
		items = append(items, ActionItem{Task: task, Due: ExtractDueDate(task)})
	}
	return items
}

// MatchCue returns the name of the first cue matching the sentence.
func MatchCue(sentence string, cues []CuePattern) (string, bool) {
	for _, cue := range cues {
		if cue.Regex != nil && cue.Regex.MatchString(sentence) {
			return cue.Name, true
		}
	}
	return "", false
}

// ExtractDueDate returns the first "by <date>" token where the date is a month
// name and day, a numeric d/m pair or an ISO yyyy-mm-dd date.
func ExtractDueDate(sentence string) string {
	m := dueDatePattern.FindStringSubmatch(sentence)
	if m == nil {
		return ""
	}
	for _, group := range m[1:] {
		if group != "" {
			return group
		}
	}
	return ""
}
