package mailbody

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips active content from email HTML while keeping the elements
// that carry text and the highlight spans this service adds.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()

	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span")

	return &Sanitizer{policy: p}
}

func (s *Sanitizer) SanitizeHTML(html string) string {
	return s.policy.Sanitize(html)
}
