package mailbody

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/wgomg/sumario/internal/processor"
)

// HTMLContainer holds a parsed email body. Highlighting only ever splits text
// nodes, so tags, attributes and entities are never matched against tasks.
// It is not a processor.Container, as string rewriting would reach into tags
// and attributes.
type HTMLContainer struct {
	doc      *goquery.Document
	original string
	fullPage bool
	changed  bool
}

// NewHTMLContainer parses raw, which may be a body fragment or a full page.
func NewHTMLContainer(raw string) (*HTMLContainer, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html body: %w", err)
	}
	return &HTMLContainer{doc: doc, original: raw, fullPage: isFullPage(raw)}, nil
}

// Content returns the markup. Until something is highlighted it is the input
// exactly as given. After that a full page is rendered whole, doctype and head
// included, and a fragment is rendered as the children of its body.
func (c *HTMLContainer) Content() string {
	if !c.changed {
		return c.original
	}

	var content string
	var err error
	if c.fullPage {
		content, err = c.doc.Html()
	} else {
		content, err = c.doc.Find("body").Html()
	}
	if err != nil {
		return c.original
	}
	return content
}

// Text renders the readable text of the body.
func (c *HTMLContainer) Text() string {
	body := c.doc.Find("body").Clone()
	body.Find(nonContentSelector).Remove()
	if len(body.Nodes) == 0 {
		return ""
	}
	return RenderText(body.Nodes[0])
}

// Highlight wraps every task occurrence found inside a single text node with a
// highlight span. Text already highlighted is skipped, as is text inside script
// and style elements. Tasks broken up by inline markup are not matched. It
// reports whether the body changed.
func (c *HTMLContainer) Highlight(items []processor.ActionItem) bool {
	pattern := processor.TaskPattern(items)
	if pattern == nil {
		return false
	}

	var targets []*html.Node
	for _, root := range c.doc.Find("body").Nodes {
		targets = collectTextNodes(root, targets)
	}

	changed := false
	for _, n := range targets {
		spans := processor.FindTaskSpans(n.Data, pattern)
		if len(spans) == 0 {
			continue
		}
		splitTextNode(n, spans)
		changed = true
	}

	c.changed = c.changed || changed
	return changed
}

func collectTextNodes(n *html.Node, acc []*html.Node) []*html.Node {
	if n.Type == html.ElementNode {
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style || isHighlightSpan(n) {
			return acc
		}
	}
	if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
		return append(acc, n)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		acc = collectTextNodes(child, acc)
	}
	return acc
}

func isHighlightSpan(n *html.Node) bool {
	if n.DataAtom != atom.Span {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == "class" && slices.Contains(strings.Fields(attr.Val), processor.HighlightClass) {
			return true
		}
	}
	return false
}

func splitTextNode(n *html.Node, spans []processor.Span) {
	parent := n.Parent
	text := n.Data

	last := 0
	for _, s := range spans {
		if s.Start > last {
			parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text[last:s.Start]}, n)
		}
		mark := &html.Node{
			Type:     html.ElementNode,
			Data:     "span",
			DataAtom: atom.Span,
			Attr:     []html.Attribute{{Key: "class", Val: processor.HighlightClass}},
		}
		mark.AppendChild(&html.Node{Type: html.TextNode, Data: text[s.Start:s.End]})
		parent.InsertBefore(mark, n)
		last = s.End
	}
	if last < len(text) {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text[last:]}, n)
	}
	parent.RemoveChild(n)
}
