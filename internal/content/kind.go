// internal/content/kind.go
//
// Section kinds.
//
// Section names map to renderers exactly once, at the fetch boundary,
// through this tagged enum.  Anything that is not one of the known
// names renders through the generic section template.
package content

import "strings"

// Kind selects the renderer for a section.
type Kind int

const (
	KindGeneric Kind = iota
	KindHero
	KindAbout
	KindProjects
	KindArticles
	KindContact
)

var kindNames = map[Kind]string{
	KindGeneric:  "generic",
	KindHero:     "hero",
	KindAbout:    "about",
	KindProjects: "projects",
	KindArticles: "articles",
	KindContact:  "contact",
}

// String returns the template-facing name of the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "generic"
}

// KindOf classifies a section by its name, case-insensitively.
func KindOf(sectionName string) Kind {
	switch strings.ToLower(strings.TrimSpace(sectionName)) {
	case "hero":
		return KindHero
	case "about":
		return KindAbout
	case "projects":
		return KindProjects
	case "articles":
		return KindArticles
	case "contact":
		return KindContact
	default:
		return KindGeneric
	}
}
