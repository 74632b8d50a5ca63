package processor

import (
	"cmp"
	"slices"
)

// SelectTop returns the n best scoring sentences in their original order.
// When there are no more than n sentences they are returned as-is.
func SelectTop(sentences []Sentence, scores []int, n int) []Sentence {
	if n < 0 {
		n = 0
	}
	if len(sentences) <= n {
		return slices.Clone(sentences)
	}

	ranked := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		ranked[i] = scoredSentence{Sentence: s, Score: scoreAt(scores, i)}
	}
	slices.SortStableFunc(ranked, cmpScored)

	top := ranked[:n]
	slices.SortFunc(top, func(a, b scoredSentence) int {
		return cmp.Compare(a.Index, b.Index)
	})

	selected := make([]Sentence, len(top))
	for i, s := range top {
		selected[i] = s.Sentence
	}
	return selected
}

// CombineScores adds boosts to base scores element-wise.
func CombineScores(base, boosts []int) []int {
	combined := make([]int, max(len(base), len(boosts)))
	for i := range combined {
		combined[i] = scoreAt(base, i) + scoreAt(boosts, i)
	}
	return combined
}

func scoreAt(scores []int, i int) int {
	if i < len(scores) {
		return scores[i]
	}
	return 0
}

func cmpScored(a, b scoredSentence) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}
