// internal/view/engine.go
//
// Template engine: func-map injection and an LRU of parsed
// *template.Template sets.
//
// All templates under the template directory parse as one set so
// sub-templates ({{ template "section_hero" . }}) work out of the box.
// The parsed set is cached; Invalidate drops it after a deploy or an
// admin-triggered reload.
package view

import (
	"html/template"
	"io"
	"path/filepath"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/cache"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/content"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/sanitize"
)

const cacheKey = "site-templates"

// Engine loads and executes the site's template set.
type Engine struct {
	dir string
	lru *cache.LRU
}

// NewEngine returns an Engine reading templates from dir.
func NewEngine(dir string) *Engine {
	return &Engine{dir: dir, lru: cache.New(8)}
}

// Render executes the named template and streams it to w.
func (e *Engine) Render(w io.Writer, name string, data any) error {
	t, err := e.load()
	if err != nil {
		return err
	}
	return t.ExecuteTemplate(w, name, data)
}

// Invalidate drops the parsed set; the next Render reparses from disk.
func (e *Engine) Invalidate() { e.lru.Remove(cacheKey) }

func (e *Engine) load() (*template.Template, error) {
	if v, ok := e.lru.Get(cacheKey); ok {
		return v.(*template.Template), nil
	}

	pattern := filepath.Join(e.dir, "*.html")
	t, err := template.New("site").Funcs(funcMap()).ParseGlob(pattern)
	if err != nil {
		return nil, err
	}

	e.lru.Add(cacheKey, t)
	return t, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"richtext": sanitize.RichText,
		"inline": func(s content.Style) template.CSS {
			return template.CSS(s.InlineCSS())
		},
		"dict": dict,
	}
}

// dict builds a map in templates: {{ dict "k" 1 "k2" "v" }}.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}
