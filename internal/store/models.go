// internal/store/models.go
//
// Row models for every content-store table.
//
// Context
// -------
// These structs mirror the persistent tables one-to-one and contain no
// behaviour beyond tiny predicates—pure data models for sqlx scans.  The
// public site and the admin API both operate on these rows; neither holds
// authoritative in-memory state, so every render re-reads through the
// Store (subject to the keyed query cache).
//
// Schema reference: migrations/0001_schema.sql.
//
// Notes
// -----
// • Nullable columns are `*string`; callers must nil-check before use.
// • `created_at` and `updated_at` are NOT NULL, so plain `time.Time` is safe.
// • `display_order` is purely a sort key and is NOT unique; duplicate
//   values sort deterministically by id (insertion order).
package store

import (
	"strings"
	"time"
)

//
// Pages
//

// Page mirrors one row in `pages`.  System pages (the admin surface) are
// excluded from navigation and refuse deletion.
type Page struct {
	ID                  uint64    `db:"id" json:"id"`
	PageName            string    `db:"page_name" json:"page_name"`
	PageLink            string    `db:"page_link" json:"page_link"`
	DisplayOrder        int       `db:"display_order" json:"display_order"`
	IsVisible           bool      `db:"is_visible" json:"is_visible"`
	IncludeInNavigation bool      `db:"include_in_navigation" json:"include_in_navigation"`
	IsSystemPage        bool      `db:"is_system_page" json:"is_system_page"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

//
// Sections (`site_config`)
//

// Section is a named, orderable, visibility-toggleable block belonging to
// a Page, typed by `layout_type`.  Sections reference their page by name,
// not id, matching the wire shape the admin forms edit.
type Section struct {
	ID              uint64    `db:"id" json:"id"`
	SectionName     string    `db:"section_name" json:"section_name"`
	Page            string    `db:"page" json:"page"`
	LayoutType      string    `db:"layout_type" json:"layout_type"`
	DisplayOrder    int       `db:"display_order" json:"display_order"`
	IsVisible       bool      `db:"is_visible" json:"is_visible"`
	BackgroundColor *string   `db:"background_color" json:"background_color,omitempty"`
	BackgroundImage *string   `db:"background_image" json:"background_image,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

//
// Content fields (`site_content`)
//

// ContentField is a single named value attached to a Section.  Lists are
// comma-joined into `content`; style sidecars are JSON objects stored in a
// sibling row whose `content_type` ends in "_style".
type ContentField struct {
	ID                    uint64    `db:"id" json:"id"`
	Section               string    `db:"section" json:"section"`
	ContentType           string    `db:"content_type" json:"content_type"`
	Content               string    `db:"content" json:"content"`
	FieldType             *string   `db:"field_type" json:"field_type,omitempty"`
	DisplayOrder          int       `db:"display_order" json:"display_order"`
	IsVisible             bool      `db:"is_visible" json:"is_visible"`
	IncludeInGlobalSearch bool      `db:"include_in_global_search" json:"include_in_global_search"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

// IsStyleSidecar reports whether the row holds a JSON style object for a
// base field rather than content of its own.
func (f ContentField) IsStyleSidecar() bool {
	return strings.HasSuffix(f.ContentType, "_style")
}

//
// Navigation (`navigation` – in-page scroll links)
//

// NavigationItem is a scroll-to-section link rendered inside the page.
// This table is distinct from the page-link navigation derived from Page
// rows; the two concepts are deliberately kept parallel (see DESIGN.md).
type NavigationItem struct {
	ID            uint64    `db:"id" json:"id"`
	Label         string    `db:"label" json:"label"`
	TargetSection string    `db:"target_section" json:"target_section"`
	DisplayOrder  int       `db:"display_order" json:"display_order"`
	IsVisible     bool      `db:"is_visible" json:"is_visible"`
	ButtonType    string    `db:"button_type" json:"button_type"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

//
// Menu entries (`navigation_menu` – header buttons)
//

// MenuEntry is a header menu button.  Target may be a page link or an
// external URL; `button_type` selects the rendering style.
type MenuEntry struct {
	ID           uint64    `db:"id" json:"id"`
	Label        string    `db:"label" json:"label"`
	Target       string    `db:"target" json:"target"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	IsVisible    bool      `db:"is_visible" json:"is_visible"`
	ButtonType   string    `db:"button_type" json:"button_type"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

//
// Projects
//

// Project mirrors one row in `projects`.  Tags are comma-joined in the
// `tags` column; TagList splits them for rendering and JSON output.
type Project struct {
	ID          uint64    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	Tags        string    `db:"tags" json:"tags"`
	Link        *string   `db:"link" json:"link,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TagList splits the comma-joined tags column, trimming whitespace and
// dropping empties.
func (p Project) TagList() []string {
	if p.Tags == "" {
		return nil
	}
	parts := strings.Split(p.Tags, ",")
	out := make([]string, 0, len(parts))
	for _, t := range parts {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

//
// Articles
//

// Article mirrors one row in `articles`.
type Article struct {
	ID        uint64    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Category  string    `db:"category" json:"category"`
	Excerpt   string    `db:"excerpt" json:"excerpt"`
	Content   string    `db:"content" json:"content"`
	Date      time.Time `db:"date" json:"date"`
	ReadTime  int       `db:"read_time" json:"read_time"`
	Link      *string   `db:"link" json:"link,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

//
// Admin users
//

// AdminUser gates the admin API.  PasswordHash is a bcrypt digest; no
// plaintext credential ever reaches the table.
type AdminUser struct {
	ID           uint64    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

//
// Contact messages
//

// ContactMessage is one public contact-form submission.
type ContactMessage struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Subject   string    `db:"subject" json:"subject"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

//
// Site visits
//

// Visit is one best-effort traffic record.  Geo columns stay empty when
// no MaxMind database is configured.
type Visit struct {
	ID         string    `db:"id" json:"id"`
	Path       string    `db:"path" json:"path"`
	Referrer   *string   `db:"referrer" json:"referrer,omitempty"`
	IP         *string   `db:"ip" json:"ip,omitempty"`
	Browser    string    `db:"browser" json:"browser"`
	OS         string    `db:"os" json:"os"`
	Device     string    `db:"device" json:"device"`
	IsBot      bool      `db:"is_bot" json:"is_bot"`
	CountryISO string    `db:"country_iso" json:"country_iso"`
	City       string    `db:"city" json:"city"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
