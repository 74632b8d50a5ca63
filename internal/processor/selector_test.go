package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func indexes(sentences []Sentence) []int {
	out := make([]int, len(sentences))
	for i, s := range sentences {
		out[i] = s.Index
	}
	return out
}

func TestSelectTop(t *testing.T) {
	sentences := SplitSentences("A one. B two. C three. D four.")

	tests := []struct {
		name   string
		scores []int
		n      int
		want   []int
	}{
		{name: "highest two in source order", scores: []int{1, 3, 5, 1}, n: 2, want: []int{1, 2}},
		{name: "ties break by index", scores: []int{1, 3, 3, 3}, n: 2, want: []int{1, 2}},
		{name: "all equal keeps lead", scores: []int{1, 1, 1, 1}, n: 2, want: []int{0, 1}},
		{name: "rank order is not output order", scores: []int{2, 0, 0, 9}, n: 2, want: []int{0, 3}},
		{name: "n equals total returns all", scores: []int{0, 0, 0, 0}, n: 4, want: []int{0, 1, 2, 3}},
		{name: "n above total returns all", scores: nil, n: 10, want: []int{0, 1, 2, 3}},
		{name: "zero", scores: []int{1, 2, 3, 4}, n: 0, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, indexes(SelectTop(sentences, tt.scores, tt.n)))
		})
	}
}

func TestSelectTopDoesNotAliasInput(t *testing.T) {
	sentences := SplitSentences("A one. B two.")
	got := SelectTop(sentences, nil, 5)
	got[0].Text = "changed"
	assert.Equal(t, "A one.", sentences[0].Text)
}

func TestCombineScores(t *testing.T) {
	assert.Equal(t, []int{3, 2, 5}, CombineScores([]int{1, 2, 3}, []int{2, 0, 2}))
	assert.Equal(t, []int{1, 2}, CombineScores([]int{1}, []int{0, 2}))
}

func TestComposeSummary(t *testing.T) {
	assert.Equal(t, "", ComposeSummary(nil))
	assert.Equal(t, "One. Two!", ComposeSummary([]Sentence{{0, "One."}, {1, "Two!"}}))
}
