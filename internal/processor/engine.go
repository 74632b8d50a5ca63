package processor

// DefaultSentences is the summary length used when the caller asks for none.
const DefaultSentences = 5

// Engine runs the offline summarizer and action item extractor. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	lexicon *Lexicon
}

// NewEngine builds an Engine over lexicon, or over DefaultLexicon when nil.
func NewEngine(lexicon *Lexicon) *Engine {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Engine{lexicon: lexicon}
}

func (e *Engine) Lexicon() *Lexicon {
	return e.lexicon
}

// Scores returns the combined frequency and keyword score of each sentence.
func (e *Engine) Scores(sentences []Sentence) []int {
	base := FrequencyScores(sentences, e.lexicon.Stopwords)
	boosts := KeywordBoosts(sentences, e.lexicon.Triggers, e.lexicon.TriggerWeight)
	return CombineScores(base, boosts)
}

// SummarySentences returns up to n sentences of text in source order.
func (e *Engine) SummarySentences(text string, n int) []Sentence {
	if n <= 0 {
		n = DefaultSentences
	}
	sentences := SplitSentences(text)
	if len(sentences) <= n {
		return sentences
	}
	return SelectTop(sentences, e.Scores(sentences), n)
}

func (e *Engine) Summarize(text string, n int) string {
	return ComposeSummary(e.SummarySentences(text, n))
}

func (e *Engine) ActionItems(text string) []ActionItem {
	return ExtractActionItems(SplitSentences(text), e.lexicon.Cues)
}

// Analyze segments text once and returns both the summary and the action items.
func (e *Engine) Analyze(text string, n int) Result {
	if n <= 0 {
		n = DefaultSentences
	}
	sentences := SplitSentences(text)

	selected := sentences
	if len(sentences) > n {
		selected = SelectTop(sentences, e.Scores(sentences), n)
	}

	return Result{
		Summary: ComposeSummary(selected),
		Items:   ExtractActionItems(sentences, e.lexicon.Cues),
	}
}
