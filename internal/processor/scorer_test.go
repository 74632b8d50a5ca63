package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hello", "world", "its", "2024"}, Tokenize("Hello, WORLD! It's 2024."))
	assert.Empty(t, Tokenize("  ...  "))
}

func TestFrequencyScores(t *testing.T) {
	sentences := SplitSentences("Budget review today. The budget is final. Lunch later.")
	stopwords := DefaultLexicon().Stopwords

	// budget appears twice across the text, every other content word once.
	assert.Equal(t, []int{6, 3, 3}, FrequencyScores(sentences, stopwords))
}

func TestFrequencyScoresSingleSentenceGetsBothBonuses(t *testing.T) {
	sentences := SplitSentences("Quarterly numbers")
	assert.Equal(t, []int{2 + leadBonus + conclusionBonus}, FrequencyScores(sentences, DefaultLexicon().Stopwords))
}

func TestFrequencyScoresIgnoresStopwords(t *testing.T) {
	sentences := SplitSentences("The and of. It is what it is.")
	assert.Equal(t, []int{leadBonus, conclusionBonus}, FrequencyScores(sentences, DefaultLexicon().Stopwords))
}

func TestFrequencyScoresEmpty(t *testing.T) {
	assert.Empty(t, FrequencyScores(nil, DefaultLexicon().Stopwords))
}

func TestKeywordBoosts(t *testing.T) {
	sentences := SplitSentences("Please see the summary. Overall, the deadline is fixed. Nothing here. Please please PLEASE.")
	lex := DefaultLexicon()

	assert.Equal(t, []int{4, 4, 0, 2}, KeywordBoosts(sentences, lex.Triggers, lex.TriggerWeight))
}

func TestKeywordBoostsSubstringMatch(t *testing.T) {
	sentences := []Sentence{{Index: 0, Text: "The requests were overdue."}}

	// "request" and "due" are matched inside longer words.
	assert.Equal(t, []int{4}, KeywordBoosts(sentences, []string{"request", "due"}, 2))
}
