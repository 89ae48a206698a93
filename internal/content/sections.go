// internal/content/sections.go
//
// Section resolution for the public site.
package content

import (
	"sort"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
)

// Resolved is a section classified for rendering, with its fields
// attached.
type Resolved struct {
	Section store.Section
	Kind    Kind
	Fields  Fields
}

// ResolveSections filters a page's sections down to the visible ones and
// sorts them ascending by display_order.  The sort is stable, so rows
// sharing a display_order keep their fetch order.  Classification into a
// Kind happens here, once, at the boundary.
func ResolveSections(sections []store.Section) []Resolved {
	visible := make([]store.Section, 0, len(sections))
	for _, s := range sections {
		if s.IsVisible {
			visible = append(visible, s)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].DisplayOrder < visible[j].DisplayOrder
	})

	out := make([]Resolved, len(visible))
	for i, s := range visible {
		out[i] = Resolved{Section: s, Kind: KindOf(s.SectionName)}
	}
	return out
}
