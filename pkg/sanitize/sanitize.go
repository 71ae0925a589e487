// Package sanitize strips unsafe markup from user-authored page content.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer applies a bluemonday policy
type Sanitizer struct {
	rich  *bluemonday.Policy
	plain *bluemonday.Policy
}

// New creates a sanitizer allowing basic formatting in rich text
func New() *Sanitizer {
	rich := bluemonday.NewPolicy()
	rich.AllowElements("p", "br", "div", "span")
	rich.AllowElements("strong", "b", "em", "i", "u")
	rich.AllowElements("ul", "ol", "li")
	rich.AllowElements("h2", "h3", "h4", "blockquote")

	rich.AllowAttrs("href").OnElements("a")
	rich.AllowRelativeURLs(false)
	rich.RequireParseableURLs(true)
	rich.AllowURLSchemes("http", "https", "mailto")
	rich.RequireNoFollowOnLinks(true)

	return &Sanitizer{
		rich:  rich,
		plain: bluemonday.StrictPolicy(),
	}
}

// Rich sanitizes descriptions and section bodies
func (s *Sanitizer) Rich(html string) string {
	return strings.TrimSpace(s.rich.Sanitize(html))
}

// Plain removes all markup, for titles, names and facet values. The result is
// unescaped text; rendering is responsible for escaping it again.
func (s *Sanitizer) Plain(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.plain.Sanitize(text)))
}

// PlainList applies Plain to each item and drops items left empty
func (s *Sanitizer) PlainList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if v := s.Plain(it); v != "" {
			out = append(out, v)
		}
	}
	return out
}
