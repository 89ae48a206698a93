// internal/content/resolve.go
//
// Content field resolution.
//
// Context
// -------
// A section's content rows are a flat list of named values.  These
// helpers turn that list into field lookups with soft defaults: absent
// keys yield "" or an empty list, never an error.  Style sidecars
// (`<key>_style` rows holding a JSON object) attach inline styles to
// their base field; a malformed style blob logs and degrades to no
// style.
//
// Notes
// -----
// • Lists are comma-joined in storage, so an item with an embedded
//   comma splits into two.  Known limitation, asserted in tests.
// • Resolution only considers visible rows.  Sidecar rows are excluded
//   from listings but remain reachable through ResolveStyled.
package content

import (
	"encoding/json"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
)

// Style is the parsed form of a `_style` sidecar: CSS-like property →
// value pairs applied as inline styles.
type Style map[string]string

// StyledValue pairs a field's content with its sidecar style.
type StyledValue struct {
	Content string
	Style   Style
}

// Fields wraps a section's content rows for named lookups.
type Fields struct {
	rows []store.ContentField
}

// NewFields wraps rows as fetched; no filtering happens here so sidecar
// lookups still work.
func NewFields(rows []store.ContentField) Fields {
	return Fields{rows: rows}
}

// Visible returns the visible, non-sidecar rows in display order — the
// listing a renderer iterates.
func (f Fields) Visible() []store.ContentField {
	out := make([]store.ContentField, 0, len(f.rows))
	for _, r := range f.rows {
		if r.IsVisible && !r.IsStyleSidecar() {
			out = append(out, r)
		}
	}
	return out
}

// lookup finds the first visible row with the given content_type.
func (f Fields) lookup(key string) (store.ContentField, bool) {
	for _, r := range f.rows {
		if r.IsVisible && r.ContentType == key {
			return r, true
		}
	}
	return store.ContentField{}, false
}

// Resolve returns the stored value for key, or "" when absent.  A
// sibling `_style` row has no effect on the result.
func (f Fields) Resolve(key string) string {
	r, ok := f.lookup(key)
	if !ok {
		return ""
	}
	return r.Content
}

// ResolveList splits the stored value on commas, trimming each item and
// dropping empties.  Absent keys yield an empty list.
func (f Fields) ResolveList(key string) []string {
	raw := f.Resolve(key)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ResolveStyled returns the value for key together with its parsed
// `<key>_style` sidecar.  A missing sidecar, or one holding malformed
// JSON, yields an empty style; the parse failure is logged, never
// surfaced.
func (f Fields) ResolveStyled(key string) StyledValue {
	v := StyledValue{Content: f.Resolve(key), Style: Style{}}
	sidecar, ok := f.lookup(key + "_style")
	if !ok {
		return v
	}
	var st Style
	if err := json.Unmarshal([]byte(sidecar.Content), &st); err != nil {
		zap.S().Warnw("malformed style sidecar",
			"section", sidecar.Section,
			"content_type", sidecar.ContentType,
			"error", err)
		return v
	}
	v.Style = st
	return v
}

// InlineCSS renders the style as a `property: value; …` string for a
// style attribute.  Keys are emitted in sorted order so output is
// deterministic.
func (s Style) InlineCSS() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
	}
	return b.String()
}
