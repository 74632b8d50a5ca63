package processor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitSentences collapses whitespace and cuts the text after every sentence
// boundary. Abbreviations and decimals followed by a capital letter are split too.
func SplitSentences(text string) []Sentence {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return []Sentence{}
	}

	var sentences []Sentence
	start := 0
	for i := 0; i < len(normalized); i++ {
		if !IsSentenceBoundary(normalized, i) {
			continue
		}
		sentences = appendSentence(sentences, normalized[start:i+1])
		start = i + 1
	}
	sentences = appendSentence(sentences, normalized[start:])

	return sentences
}

func appendSentence(sentences []Sentence, raw string) []Sentence {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return sentences
	}
	return append(sentences, Sentence{Index: len(sentences), Text: trimmed})
}

// IsSentenceBoundary reports whether text[i] is a terminator (. ! ?) followed by
// whitespace and then an uppercase ASCII letter or an opening parenthesis.
func IsSentenceBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return false
	}
	switch text[i] {
	case '.', '!', '?':
	default:
		return false
	}

	j := i + 1
	sawSpace := false
	for j < len(text) {
		r, size := utf8.DecodeRuneInString(text[j:])
		if !unicode.IsSpace(r) {
			break
		}
		sawSpace = true
		j += size
	}
	if !sawSpace || j >= len(text) {
		return false
	}

	next := text[j]
	return next == '(' || (next >= 'A' && next <= 'Z')
}
