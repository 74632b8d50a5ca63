package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sentenceTexts(sentences []Sentence) []string {
	texts := make([]string, len(sentences))
	for i, s := range sentences {
		texts[i] = s.Text
	}
	return texts
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "email",
			text: "Hi team. We finished the draft. Please review it by Friday. Thanks!",
			want: []string{"Hi team.", "We finished the draft.", "Please review it by Friday.", "Thanks!"},
		},
		{name: "empty", text: "", want: []string{}},
		{name: "whitespace only", text: "   \n\t  ", want: []string{}},
		{name: "no boundary", text: "no boundary here", want: []string{"no boundary here"}},
		{
			name: "newlines collapse",
			text: "Line one.\n\nLine   two",
			want: []string{"Line one.", "Line two"},
		},
		{
			name: "decimal without space is kept",
			text: "Version 2.5 is out. Costs rose 3.5 percent.",
			want: []string{"Version 2.5 is out.", "Costs rose 3.5 percent."},
		},
		{
			name: "opening parenthesis starts a sentence",
			text: "We shipped it. (Finally) it works? Yes!",
			want: []string{"We shipped it.", "(Finally) it works?", "Yes!"},
		},
		{
			name: "lowercase continuation does not split",
			text: "done. lowercase next",
			want: []string{"done. lowercase next"},
		},
		{
			name: "terminator without whitespace does not split",
			text: "Wait!What now",
			want: []string{"Wait!What now"},
		},
		{
			name: "abbreviation is split",
			text: "Mr. Smith arrived.",
			want: []string{"Mr.", "Smith arrived."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			assert.Equal(t, tt.want, sentenceTexts(got))
			for i, s := range got {
				assert.Equal(t, i, s.Index)
			}
		})
	}
}

func TestSplitSentencesDoesNotMutateInput(t *testing.T) {
	text := "One here.  Two   there."
	original := text
	SplitSentences(text)
	assert.Equal(t, original, text)
}

func TestIsSentenceBoundary(t *testing.T) {
	tests := []struct {
		text string
		i    int
		want bool
	}{
		{"End. Next", 3, true},
		{"End!\n\tNext", 3, true},
		{"End? (next", 3, true},
		{"End. next", 3, false},
		{"End.Next", 3, false},
		{"End. ", 3, false},
		{"End, Next", 3, false},
		{"End. Next", 0, false},
		{"End. Next", -1, false},
		{"End. Next", 42, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSentenceBoundary(tt.text, tt.i), "%q at %d", tt.text, tt.i)
	}
}
