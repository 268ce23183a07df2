// Package htmlsanitize cleans HTML before it is rendered unescaped.
//
// Sanitize keeps a rich-text subset (paragraphs, lists, links, headings,
// tables) for location copy; PlainText strips all markup from visitor input.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy   = newRichPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "mark")
	p.AllowAttrs("class").OnElements("table", "tr", "td", "th", "p", "div", "span")
	p.AllowAttrs("loading").Matching(bluemonday.SpaceSeparatedTokens).OnElements("img")
	return p
}

// Sanitize returns input with unsafe elements and attributes removed.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return richPolicy.Sanitize(input)
}

// SanitizeToHTML is Sanitize for direct use in templates.
func SanitizeToHTML(input string) template.HTML {
	return template.HTML(Sanitize(input))
}

// PlainText removes every tag and returns unescaped text, ready to be
// stored and later escaped by html/template.
func PlainText(input string) string {
	if input == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(input)))
}

// IsPlainText reports whether s contains no tag-like markup.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
