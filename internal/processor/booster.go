package processor

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeywordBoosts gives each sentence weight points per distinct trigger phrase it
// contains. Matching is case-insensitive substring containment.
func KeywordBoosts(sentences []Sentence, triggers []string, weight int) []int {
	caser := cases.Lower(language.English)

	phrases := NewOrderedSet[string]()
	for _, t := range triggers {
		if t = caser.String(t); t != "" {
			phrases.Add(t)
		}
	}

	list := phrases.Values()
	boosts := make([]int, len(sentences))
	for i, s := range sentences {
		lower := caser.String(s.Text)
		matched := 0
		for _, phrase := range list {
			if strings.Contains(lower, phrase) {
				matched++
			}
		}
		boosts[i] = matched * weight
	}

	return boosts
}
