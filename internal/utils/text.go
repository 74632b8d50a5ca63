package utils

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	cleanUpPattern    = regexp.MustCompile(`[$€£¥¢%&*+=<>^|~@#\\_\[\]{}]`)
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

func CountWords(text string) int {
	words := strings.Fields(text)
	wordCount := len(words)

	return wordCount
}

func EstimateTokensFromWords(wordCount int) int {
	return int(math.Round(float64(wordCount) * 1.3))
}

func CleanUp(text string) string {
	return cleanUpPattern.ReplaceAllString(text, "")
}

// Truncate cuts s to at most maxRunes runes.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxRunes])
}

func CleanCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")

	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}

// ExtractJSONObject returns the widest {...} span in s, or "" if there is none.
func ExtractJSONObject(s string) string {
	return jsonObjectPattern.FindString(s)
}
