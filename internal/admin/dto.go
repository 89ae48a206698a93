// internal/admin/dto.go
//
// Request DTOs for the admin API.
//
// Each payload mirrors one entity's editable columns and carries
// validator tags; numeric coercion happens at JSON decode, comma-split
// for tags happens in the service.  Validation failure blocks the write
// entirely — no partial submit.
package admin

// PageInput covers create and update; ID is zero on create.
type PageInput struct {
	ID                  uint64 `json:"id"`
	PageName            string `json:"page_name" validate:"required,max=120"`
	DisplayOrder        int    `json:"display_order" validate:"gte=0"`
	IsVisible           bool   `json:"is_visible"`
	IncludeInNavigation bool   `json:"include_in_navigation"`
}

type SectionInput struct {
	ID              uint64  `json:"id"`
	SectionName     string  `json:"section_name" validate:"required,max=120"`
	Page            string  `json:"page" validate:"required,max=120"`
	LayoutType      string  `json:"layout_type" validate:"required,max=60"`
	DisplayOrder    int     `json:"display_order" validate:"gte=0"`
	IsVisible       bool    `json:"is_visible"`
	BackgroundColor *string `json:"background_color,omitempty" validate:"omitempty,max=60"`
	BackgroundImage *string `json:"background_image,omitempty" validate:"omitempty,max=500"`
}

// ContentInput optionally carries a style sidecar; when Style is
// non-nil the content row and its `_style` row are written in one
// transaction.
type ContentInput struct {
	ID                    uint64  `json:"id"`
	Section               string  `json:"section" validate:"required,max=120"`
	ContentType           string  `json:"content_type" validate:"required,max=120"`
	Content               string  `json:"content"`
	FieldType             *string `json:"field_type,omitempty" validate:"omitempty,max=60"`
	DisplayOrder          int     `json:"display_order" validate:"gte=0"`
	IsVisible             bool    `json:"is_visible"`
	IncludeInGlobalSearch bool    `json:"include_in_global_search"`
	Style                 *string `json:"style,omitempty" validate:"omitempty,json"`
}

type NavigationInput struct {
	ID            uint64 `json:"id"`
	Label         string `json:"label" validate:"required,max=120"`
	TargetSection string `json:"target_section" validate:"required,max=120"`
	DisplayOrder  int    `json:"display_order" validate:"gte=0"`
	IsVisible     bool   `json:"is_visible"`
	ButtonType    string `json:"button_type" validate:"omitempty,max=60"`
}

type MenuInput struct {
	ID           uint64 `json:"id"`
	Label        string `json:"label" validate:"required,max=120"`
	Target       string `json:"target" validate:"required,max=500"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
	IsVisible    bool   `json:"is_visible"`
	ButtonType   string `json:"button_type" validate:"omitempty,max=60"`
}

// ProjectInput accepts tags as a list; the service comma-joins them for
// storage.
type ProjectInput struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required,max=2000"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url,max=500"`
	Tags        []string `json:"tags" validate:"dive,max=60"`
	Link        *string  `json:"link,omitempty" validate:"omitempty,url,max=500"`
}

type ArticleInput struct {
	ID       uint64  `json:"id"`
	Title    string  `json:"title" validate:"required,max=200"`
	Category string  `json:"category" validate:"required,max=120"`
	Excerpt  string  `json:"excerpt" validate:"max=2000"`
	Content  string  `json:"content"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	ReadTime int     `json:"read_time" validate:"gte=0,lte=600"`
	Link     *string `json:"link,omitempty" validate:"omitempty,url,max=500"`
}

// SettingInput upserts one site_settings key-value pair.
type SettingInput struct {
	Key   string `json:"key" validate:"required,max=120"`
	Value string `json:"value" validate:"max=5000"`
}

// MoveInput reorders one row against its neighbor in the displayed
// list.  Scope narrows the list the way the admin tabs do: sections by
// page, content by section.
type MoveInput struct {
	ID        uint64 `json:"id" validate:"required"`
	Direction string `json:"direction" validate:"required,oneof=up down"`
	Scope     string `json:"scope,omitempty" validate:"omitempty,max=120"`
}

// LoginInput authenticates an admin user.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResult carries the issued token.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}
