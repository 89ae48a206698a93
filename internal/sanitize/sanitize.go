// internal/sanitize/sanitize.go
//
// Rich-text sanitisation.
//
// Context
// -------
// Content fields may hold limited rich text that the public site injects
// as HTML.  Raw trust would be an XSS hole, so every rich-text value is
// run through a bluemonday allow-list before it reaches a template.  The
// policy permits basic formatting (paragraphs, emphasis, lists, links)
// and strips everything else, including scripts, event handlers, and
// inline styles not produced by the style sidecar path.
package sanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

var richText = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "b", "strong", "i", "em", "u", "s",
		"ul", "ol", "li", "blockquote", "code", "pre",
		"h1", "h2", "h3", "h4", "h5", "h6", "span")
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.RequireNoFollowOnLinks(true)
	return p
}()

// RichText sanitises a stored rich-text value and returns HTML safe to
// inject into a template.
func RichText(raw string) template.HTML {
	return template.HTML(richText.Sanitize(raw))
}

// Plain strips every tag, leaving text only.  Used for search snippets
// and meta descriptions.
func Plain(raw string) string {
	return bluemonday.StrictPolicy().Sanitize(raw)
}
