package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrap(s string) string {
	return markOpen + s + markClose
}

func TestHighlight(t *testing.T) {
	c := NewTextContainer("Hi team. Please review it by Friday. Thanks!")

	changed := Highlight(c, []ActionItem{{Task: "Please review it by Friday."}})

	assert.True(t, changed)
	assert.Equal(t, 1, c.Writes())
	assert.Equal(t, "Hi team. "+wrap("Please review it by Friday.")+" Thanks!", c.Content())
}

func TestHighlightIsIdempotent(t *testing.T) {
	items := []ActionItem{{Task: "Please send it."}, {Task: "Can you call?"}}
	c := NewTextContainer("Please send it. Then more. Can you call? Please send it.")

	require.True(t, Highlight(c, items))
	once := c.Content()

	assert.False(t, Highlight(c, items))
	assert.Equal(t, once, c.Content())
	assert.Equal(t, 1, c.Writes())
	assert.Equal(t, wrap("Please send it.")+" Then more. "+wrap("Can you call?")+" "+wrap("Please send it."), once)
}

func TestHighlightEscapesTaskText(t *testing.T) {
	task := "Can you fix (a+b)*c? [urgent] $5 ^now|later"
	c := NewTextContainer("Hello. " + task + " Bye.")

	require.True(t, Highlight(c, []ActionItem{{Task: task}}))
	assert.Equal(t, "Hello. "+wrap(task)+" Bye.", c.Content())
}

func TestHighlightSkipsMissingTasks(t *testing.T) {
	c := NewTextContainer("Nothing to see here.")

	assert.False(t, Highlight(c, []ActionItem{{Task: "Please send the deck."}}))
	assert.False(t, Highlight(c, nil))
	assert.False(t, Highlight(c, []ActionItem{{Task: "   "}}))
	assert.Equal(t, 0, c.Writes())
	assert.Equal(t, "Nothing to see here.", c.Content())
}

func TestHighlightMatchesAcrossWhitespaceRuns(t *testing.T) {
	c := NewTextContainer("Please review\n   it by Friday.")

	require.True(t, Highlight(c, []ActionItem{{Task: "Please review it by Friday."}}))
	assert.Equal(t, wrap("Please review\n   it by Friday."), c.Content())
}

func TestHighlightPrefersLongerTask(t *testing.T) {
	c := NewTextContainer("Please review it by Friday. Also review it.")
	items := []ActionItem{{Task: "review it"}, {Task: "Please review it by Friday."}}

	require.True(t, Highlight(c, items))
	assert.Equal(t, wrap("Please review it by Friday.")+" Also "+wrap("review it")+".", c.Content())

	assert.False(t, Highlight(c, items))
}

func TestHighlightMatchesNonBreakingSpaces(t *testing.T) {
	c := NewTextContainer("Hi team.\u00a0Please\u00a0send the report by Friday.")

	require.True(t, Highlight(c, []ActionItem{{Task: "Please send the report by Friday."}}))
	assert.Equal(t, "Hi team.\u00a0"+wrap("Please\u00a0send the report by Friday."), c.Content())
}

func TestTaskPattern(t *testing.T) {
	assert.Nil(t, TaskPattern(nil))

	re := TaskPattern([]ActionItem{{Task: "a.b"}, {Task: "a.b"}})
	require.NotNil(t, re)
	assert.True(t, re.MatchString("x a.b y"))
	assert.False(t, re.MatchString("x axb y"))
}

func TestRenderSpans(t *testing.T) {
	got := RenderSpans("abcdef", []Span{{0, 1}, {3, 5}}, "[", "]")
	assert.Equal(t, "[a]bc[de]f", got)
	assert.Equal(t, "abc", RenderSpans("abc", nil, "[", "]"))
}

func TestFindTaskSpansSkipsMarkedRanges(t *testing.T) {
	content := wrap("send it") + " send it"
	re := TaskPattern([]ActionItem{{Task: "send it"}})

	spans := FindTaskSpans(content, re)
	require.Len(t, spans, 1)
	assert.Equal(t, "send it", content[spans[0].Start:spans[0].End])
	assert.Equal(t, len(content)-len("send it"), spans[0].Start)
}
