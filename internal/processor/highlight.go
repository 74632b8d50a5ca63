package processor

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

const (
	HighlightClass = "ai-sum-highlight"

	markOpen  = `<span class="` + HighlightClass + `">`
	markClose = `</span>`

	taskWordSeparator = `[\s\p{Zs}]+`
)

// Container is a mutable piece of rendered content that can be highlighted.
type Container interface {
	Content() string
	SetContent(content string)
}

// TextContainer is an in-memory Container. It counts writes so callers can tell
// whether highlighting touched it.
type TextContainer struct {
	content string
	writes  int
}

func NewTextContainer(content string) *TextContainer {
	return &TextContainer{content: content}
}

func (c *TextContainer) Content() string { return c.content }

func (c *TextContainer) SetContent(content string) {
	c.content = content
	c.writes++
}

func (c *TextContainer) Writes() int { return c.writes }

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

// Highlight wraps every occurrence of each item's task in a highlight span. Text
// already inside a highlight span is left alone, so applying it twice is the same
// as applying it once. It reports whether the container was written.
func Highlight(c Container, items []ActionItem) bool {
	pattern := TaskPattern(items)
	if pattern == nil {
		return false
	}

	content := c.Content()
	spans := FindTaskSpans(content, pattern)
	if len(spans) == 0 {
		return false
	}

	marked := RenderSpans(content, spans, markOpen, markClose)
	if marked == content {
		return false
	}
	c.SetContent(marked)
	return true
}

// TaskPattern compiles the unique tasks into one alternation, longest first, so a
// task that contains another wins at the same position. Task text is escaped and
// inner whitespace matches any run of whitespace, non-breaking spaces included. It returns nil when there is
// nothing to match.
func TaskPattern(items []ActionItem) *regexp.Regexp {
	tasks := NewOrderedSet[string]()
	for _, it := range items {
		if t := strings.TrimSpace(it.Task); t != "" {
			tasks.Add(t)
		}
	}
	if tasks.Len() == 0 {
		return nil
	}

	ordered := tasks.Values()
	slices.SortStableFunc(ordered, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	alternatives := make([]string, len(ordered))
	for i, task := range ordered {
		words := strings.Fields(task)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		alternatives[i] = strings.Join(words, taskWordSeparator)
	}

	return regexp.MustCompile(`(?:` + strings.Join(alternatives, "|") + `)`)
}

// FindTaskSpans returns the non-overlapping matches of pattern that lie outside
// existing highlight spans, in ascending order.
func FindTaskSpans(content string, pattern *regexp.Regexp) []Span {
	var spans []Span
	for _, gap := range unmarkedRanges(content) {
		for _, loc := range pattern.FindAllStringIndex(content[gap.Start:gap.End], -1) {
			if loc[0] == loc[1] {
				continue
			}
			spans = append(spans, Span{Start: gap.Start + loc[0], End: gap.Start + loc[1]})
		}
	}
	return spans
}

// RenderSpans wraps each span of content between openTag and closeTag. Spans must be
// sorted and non-overlapping.
func RenderSpans(content string, spans []Span, openTag, closeTag string) string {
	var b strings.Builder
	b.Grow(len(content) + len(spans)*(len(openTag)+len(closeTag)))

	last := 0
	for _, s := range spans {
		b.WriteString(content[last:s.Start])
		b.WriteString(openTag)
		b.WriteString(content[s.Start:s.End])
		b.WriteString(closeTag)
		last = s.End
	}
	b.WriteString(content[last:])

	return b.String()
}

func unmarkedRanges(content string) []Span {
	var gaps []Span
	pos := 0
	for pos < len(content) {
		open := strings.Index(content[pos:], markOpen)
		if open < 0 {
			break
		}
		open += pos
		closeAt := strings.Index(content[open+len(markOpen):], markClose)
		if closeAt < 0 {
			break
		}
		end := open + len(markOpen) + closeAt + len(markClose)

		if open > pos {
			gaps = append(gaps, Span{Start: pos, End: open})
		}
		pos = end
	}
	if pos < len(content) {
		gaps = append(gaps, Span{Start: pos, End: len(content)})
	}
	return gaps
}
