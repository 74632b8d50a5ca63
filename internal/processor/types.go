package processor

// Sentence is a trimmed, non-empty sentence and its position in the source text.
type Sentence struct {
	Index int
	Text  string
}

type ActionItem struct {
	Task string `json:"task"`
	Due  string `json:"due,omitempty"`
}

type Result struct {
	Summary string       `json:"summary"`
	Items   []ActionItem `json:"items"`
}

type scoredSentence struct {
	Sentence
	Score int
}
