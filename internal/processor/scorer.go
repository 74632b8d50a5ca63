package processor

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	leadBonus       = 2
	conclusionBonus = 1
)

var punctuationPattern = regexp.MustCompile(`[^\w\s]`)

// Tokenize lowercases text, drops punctuation and splits on whitespace.
func Tokenize(text string) []string {
	lower := cases.Lower(language.English).String(text)
	return strings.Fields(punctuationPattern.ReplaceAllString(lower, ""))
}

// FrequencyScores scores every sentence by the global frequency of its
// non-stopword tokens, plus a lead bonus for the first sentence and a
// conclusion bonus for the last.
func FrequencyScores(sentences []Sentence, stopwords map[string]struct{}) []int {
	tokens := make([][]string, len(sentences))
	globalTokenFreq := make(map[string]int)

	for i, s := range sentences {
		for _, token := range Tokenize(s.Text) {
			if _, stop := stopwords[token]; stop {
				continue
			}
			tokens[i] = append(tokens[i], token)
			globalTokenFreq[token]++
		}
	}

	scores := make([]int, len(sentences))
	for i := range sentences {
		score := 0
		for _, token := range tokens[i] {
			score += globalTokenFreq[token]
		}
		scores[i] = score + positionBonus(i, len(sentences))
	}

	return scores
}

func positionBonus(i, total int) int {
	bonus := 0
	if i == 0 {
		bonus += leadBonus
	}
	if i == total-1 {
		bonus += conclusionBonus
	}
	return bonus
}
