// Package mailbody turns rendered email bodies into plain text for the engine and
// applies action item highlights back onto the HTML.
package mailbody

import (
	"regexp"
	"strings"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// minReadableLength is the shortest readability output trusted over the plain
// DOM rendering.
const minReadableLength = 200

// nonContentSelector matches elements that never carry message text, plus the
// quoted history of replies.
const nonContentSelector = "head, script, style, noscript, title, iframe, object, embed, " +
	".gmail_quote, blockquote[type='cite'], .ai-sum-toolbar"

var blockAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Li: true, atom.Tr: true, atom.Table: true,
	atom.Ul: true, atom.Ol: true, atom.Blockquote: true, atom.Pre: true, atom.Section: true,
	atom.Article: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Hr: true,
}

// ExtractText returns the readable text of an email body. Plain text is returned
// trimmed; HTML is cleaned, sanitized and rendered with block elements on their
// own lines.
func ExtractText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	// Short-circuit if the payload is already plain text.
	if !LooksLikeHTML(trimmed) {
		return trimmed
	}

	cleaned := stripNonContent(trimmed)
	sanitized := NewSanitizer().SanitizeHTML(cleaned)

	if isFullPage(trimmed) {
		if text := readableText(sanitized); len(text) >= minReadableLength {
			return text
		}
	}

	root, err := html.Parse(strings.NewReader(sanitized))
	if err != nil {
		return normalizeLines(sanitized)
	}
	return RenderText(root)
}

// htmlTagPattern matches a tag of an element that shows up in email bodies.
// Angle-bracketed addresses such as <ana@example.com> do not match.
var htmlTagPattern = regexp.MustCompile(`(?i)<(?:!doctype\s|/?(?:html|head|body|meta|title|style|script|div|span|p|br|hr|a|b|i|u|s|em|strong|font|center|small|big|sub|sup|img|table|thead|tbody|tr|td|th|ul|ol|li|dl|dt|dd|blockquote|pre|code|h[1-6])(?:[\s/][^<>]*)?>)`)

// LooksLikeHTML reports whether s contains at least one known HTML tag.
func LooksLikeHTML(s string) bool {
	return htmlTagPattern.MatchString(s)
}

func isFullPage(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") || strings.Contains(lower, "<body")
}

func stripNonContent(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	doc.Find(nonContentSelector).Remove()

	cleaned, err := doc.Html()
	if err != nil || cleaned == "" {
		return raw
	}
	return cleaned
}

func readableText(page string) string {
	article, err := readability.FromReader(strings.NewReader(page), nil)
	if err != nil {
		return ""
	}

	var textBuf strings.Builder
	if err := article.RenderText(&textBuf); err != nil {
		return ""
	}
	return normalizeLines(textBuf.String())
}

// RenderText renders the text content of n, breaking lines around block
// elements and at <br>.
func RenderText(n *html.Node) string {
	var b strings.Builder
	renderNode(&b, n)
	return normalizeLines(b.String())
}

func renderNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.DataAtom == atom.Br {
			b.WriteString("\n")
			return
		}
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	}

	block := n.Type == html.ElementNode && blockAtoms[n.DataAtom]
	if block {
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(b, c)
	}
	if block {
		b.WriteString("\n")
	}
}

// normalizeLines collapses spaces inside each line and drops blank lines.
func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
