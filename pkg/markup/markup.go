// Package markup provides helpers for working with serialized rich-text
// content. Review comments are stored as markup strings; emptiness is
// judged on the visible text, not the raw serialization.
package markup

import (
	"regexp"
	"strings"
)

var (
	tagRe    = regexp.MustCompile(`<[^>]*>`)
	entityRe = regexp.MustCompile(`&(nbsp|amp|lt|gt|quot);`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

var entities = map[string]string{
	"&nbsp;": " ",
	"&amp;":  "&",
	"&lt;":   "<",
	"&gt;":   ">",
	"&quot;": `"`,
}

// Strip removes markup tags and decodes common entities, collapsing
// whitespace runs to single spaces.
func Strip(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = entityRe.ReplaceAllStringFunc(s, func(e string) string { return entities[e] })
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsBlank reports whether the markup has no visible text content.
// Markdown punctuation alone ("# ", "---", "* ") also counts as blank.
func IsBlank(s string) bool {
	stripped := Strip(s)
	return strings.TrimLeft(stripped, "#*->`_~ \t") == ""
}
