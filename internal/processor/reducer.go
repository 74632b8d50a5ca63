package processor

import (
	"cmp"
	"slices"

	"github.com/wgomg/sumario/internal/config"
)

type candidate struct {
	sentence     Sentence
	uniqueTokens []string
	score        float64
}

// Reduce shrinks text to at most cfg.MaxChars by keeping the lead sentence and
// then the best scoring sentences, re-ordered as in the source. Once a sentence
// is kept, sentences sharing much of its vocabulary are penalised so the
// reduction covers more of the text.
func (e *Engine) Reduce(text string, cfg *config.ReductionConfig) string {
	sentences := SplitSentences(text)
	full := ComposeSummary(sentences)
	if len(sentences) == 0 || cfg.MaxChars <= 0 || len(full) <= cfg.MaxChars {
		return full
	}

	scores := e.Scores(sentences)
	candidates := make([]candidate, len(sentences))
	for i, s := range sentences {
		candidates[i] = candidate{
			sentence:     s,
			uniqueTokens: uniqueContentTokens(s.Text, e.lexicon.Stopwords),
			score:        float64(scores[i]),
		}
	}

	selected := []Sentence{candidates[0].sentence}
	currentLength := len(candidates[0].sentence.Text)

	remaining := make([]candidate, len(candidates)-1)
	copy(remaining, candidates[1:])
	slices.SortStableFunc(remaining, cmpCandidate)

	for len(remaining) > 0 && currentLength < cfg.MaxChars {
		next := remaining[0]
		remaining = remaining[1:]

		if currentLength+1+len(next.sentence.Text) > cfg.MaxChars {
			continue
		}
		selected = append(selected, next.sentence)
		currentLength += 1 + len(next.sentence.Text)

		for i := range remaining {
			similarity := jaccardSimilarity(next.uniqueTokens, remaining[i].uniqueTokens)

			if similarity > cfg.DiversityThreshold {
				penalty := max(1.0-(similarity*2.0), cfg.MinPenalty)
				remaining[i].score *= penalty
			}
		}

		slices.SortStableFunc(remaining, cmpCandidate)
	}

	slices.SortFunc(selected, func(a, b Sentence) int {
		return cmp.Compare(a.Index, b.Index)
	})

	return ComposeSummary(selected)
}

func uniqueContentTokens(text string, stopwords map[string]struct{}) []string {
	set := NewOrderedSet[string]()
	for _, token := range Tokenize(text) {
		if _, stop := stopwords[token]; !stop {
			set.Add(token)
		}
	}
	return set.Values()
}

func jaccardSimilarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}

	set := make(map[string]bool)
	for _, v := range a {
		set[v] = true
	}

	intersection := 0
	for _, v := range b {
		if set[v] {
			intersection++
		}
	}

	// union = |A| + |B| - intersection
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}

func cmpCandidate(a, b candidate) int {
	if c := cmp.Compare(b.score, a.score); c != 0 {
		return c
	}
	return cmp.Compare(a.sentence.Index, b.sentence.Index)
}
