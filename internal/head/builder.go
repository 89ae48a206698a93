// internal/head/builder.go
//
// The Builder collects everything that should appear inside a page's
// <head> element.  It is scoped to a single render: handlers seed it
// from site settings, per-page data may override the title, and the
// base layout decides where to emit each slice.
package head

import (
	"html/template"
	"strings"
	"sync"
)

// Builder accumulates head tags for one page render.  Typical use is
// one goroutine per request; the mutex covers the odd helper that
// pushes tags from a template func.
type Builder struct {
	mu sync.Mutex

	title string

	metas []string
	links []string

	// seen tracks keys for deduplication.
	seen map[string]struct{}
}

func New() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// SetTitle overrides the page <title>.  The last caller wins.
func (b *Builder) SetTitle(t string) {
	b.mu.Lock()
	b.title = t
	b.mu.Unlock()
}

// Title returns a fully formed <title> tag or an empty string.
func (b *Builder) Title() template.HTML {
	if b.title == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(b.title)
	return template.HTML("<title>" + escaped + "</title>")
}

// MetaNamed adds a <meta name=… content=…> tag, escaping both values.
func (b *Builder) MetaNamed(name, content string) {
	tag := `<meta name="` + template.HTMLEscapeString(name) +
		`" content="` + template.HTMLEscapeString(content) + `">`
	b.add("meta:"+name, &b.metas, tag)
}

// Link adds a raw, pre-escaped <link> tag.
func (b *Builder) Link(tag string) { b.add("link:"+tag, &b.links, tag) }

func (b *Builder) add(key string, tgt *[]string, tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.seen[key]; dup {
		return
	}
	b.seen[key] = struct{}{}
	*tgt = append(*tgt, tag)
}

// Metas and Links return the accumulated tags for the layout template.
func (b *Builder) Metas() template.HTML { return concat(b.metas) }
func (b *Builder) Links() template.HTML { return concat(b.links) }

// concat joins pre-escaped tags without a separator.
func concat(sl []string) template.HTML {
	return template.HTML(strings.Join(sl, ""))
}

// FromSettings seeds a Builder from the site_settings key-value map:
// "site_title" drives <title>, "site_description" the description meta,
// "favicon" a <link rel=icon> tag.
func FromSettings(settings map[string]string) *Builder {
	b := New()
	if v := settings["site_title"]; v != "" {
		b.SetTitle(v)
	}
	if v := settings["site_description"]; v != "" {
		b.MetaNamed("description", v)
	}
	if v := settings["favicon"]; v != "" {
		b.Link(`<link rel="icon" href="` + template.HTMLEscapeString(v) + `">`)
	}
	b.MetaNamed("viewport", "width=device-width, initial-scale=1")
	return b
}
