package processor

import (
	"regexp"
	"strings"
)

const defaultTriggerWeight = 2

// CuePattern is a named rule that marks a sentence as actionable.
type CuePattern struct {
	Name  string
	Regex *regexp.Regexp
}

// Lexicon holds the word lists and rules the engine scores and extracts with.
// A Lexicon must not be modified once an Engine is using it.
type Lexicon struct {
	Stopwords     map[string]struct{}
	Triggers      []string
	TriggerWeight int
	Cues          []CuePattern
}

const stopwordList = "i me my myself we our ours ourselves you your yours yourself yourselves " +
	"he him his himself she her hers herself it its itself they them their theirs themselves " +
	"what which who whom this that these those am is are was were be been being have has had " +
	"having do does did doing a an the and but if or because as until while of at by for with " +
	"about against between into through during before after above below to from up down in out " +
	"on off over under again further then once here there when where why how all any both each " +
	"few more most other some such no nor not only own same so than too very s t can will just " +
	"don should now"

var defaultTriggers = []string{
	"summary",
	"conclusion",
	"in short",
	"overall",
	"to summarize",
	"next steps",
	"action",
	"todo",
	"deadline",
	"due",
	"please",
	"kindly",
	"request",
	"important",
}

var imperativeVerbs = []string{
	"send", "review", "approve", "schedule", "call", "meet", "deploy", "fix", "update",
	"share", "confirm", "reply", "provide", "create", "summarize", "plan", "arrange",
}

// DefaultLexicon returns a fresh copy of the built-in English lexicon.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Stopwords:     NewStopwordSet(strings.Fields(stopwordList)),
		Triggers:      append([]string(nil), defaultTriggers...),
		TriggerWeight: defaultTriggerWeight,
		Cues:          DefaultCuePatterns(),
	}
}

func NewStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// DefaultCuePatterns returns the request, obligation, date and imperative rules in
// evaluation order.
func DefaultCuePatterns() []CuePattern {
	return []CuePattern{
		{Name: "please", Regex: regexp.MustCompile(`(?i)\bplease\b.*?\.`)},
		{Name: "kindly", Regex: regexp.MustCompile(`(?i)\bkindly\b.*?\.`)},
		{Name: "can-you", Regex: regexp.MustCompile(`(?i)\bcan you\b.*?\?`)},
		{Name: "could-you", Regex: regexp.MustCompile(`(?i)\bcould you\b.*?\?`)},
		{Name: "need-to", Regex: regexp.MustCompile(`(?i)\bneed to\b.*?\.`)},
		{Name: "we-should", Regex: regexp.MustCompile(`(?i)\bwe should\b.*?\.`)},
		{Name: "action", Regex: regexp.MustCompile(`(?i)\baction\b.*?\.`)},
		{Name: "eta", Regex: regexp.MustCompile(`(?i)\bETA\b.*?\b\d{1,2}/\d{1,2}|\bby\s+\w+\s+\d{1,2}`)},
		{Name: "imperative", Regex: regexp.MustCompile(`(?i)\b(?:` + strings.Join(imperativeVerbs, "|") + `)\b`)},
	}
}
