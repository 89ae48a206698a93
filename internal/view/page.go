// internal/view/page.go
//
// Page assembly for the public site.
//
// Context
// -------
// A page render walks pages → sections → content fields through the
// store, classifies each section once (content.ResolveSections), and
// hands the resulting tree to the template set.  Catalog-backed kinds
// (projects, articles) pull their rows here too, so templates stay pure.
//
// Failure semantics: the public site never hard-errors on data issues.
// When the store cannot produce a page tree, FallbackPage returns
// hardcoded default copy instead and the error is logged upstream.
package view

import (
	"context"
	"html/template"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/content"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/head"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
)

// SectionView is one renderable section with everything its template
// needs resolved.
type SectionView struct {
	Section  store.Section
	Kind     string
	Fields   content.Fields
	Projects []store.Project // populated for the projects kind only
	Articles []store.Article // populated for the articles kind only
}

// Title returns the styled title, falling back to the section name so a
// section without a title field still renders a heading.
func (s SectionView) Title() content.StyledValue {
	v := s.Fields.ResolveStyled("title")
	if v.Content == "" {
		v.Content = s.Section.SectionName
	}
	return v
}

// Subtitle and Body are plain styled lookups; empty values are omitted
// by the templates.
func (s SectionView) Subtitle() content.StyledValue { return s.Fields.ResolveStyled("subtitle") }
func (s SectionView) Body() content.StyledValue     { return s.Fields.ResolveStyled("content") }

// BackgroundCSS merges the section row's background columns into one
// inline style string.
func (s SectionView) BackgroundCSS() template.CSS {
	st := content.Style{}
	if s.Section.BackgroundColor != nil && *s.Section.BackgroundColor != "" {
		st["background-color"] = *s.Section.BackgroundColor
	}
	if s.Section.BackgroundImage != nil && *s.Section.BackgroundImage != "" {
		st["background-image"] = "url('" + *s.Section.BackgroundImage + "')"
	}
	return template.CSS(st.InlineCSS())
}

// PageData is the root template payload.
type PageData struct {
	Page     store.Page
	Head     *head.Builder
	Nav      []store.Page
	Scroll   []store.NavigationItem
	Menu     []store.MenuEntry
	Sections []SectionView

	// CSRF and RenderTS feed the contact form's hidden inputs; the
	// serving handler fills them in.
	CSRF     string
	RenderTS int64
}

// Builder assembles PageData from the store.
type Builder struct {
	store *store.Store
}

// NewBuilder returns a page Builder over the given store.
func NewBuilder(st *store.Store) *Builder {
	return &Builder{store: st}
}

// BuildPage resolves the full render tree for one page link.  Returns
// store.ErrNotFound when no such page exists or it is hidden.
func (b *Builder) BuildPage(ctx context.Context, link string) (*PageData, error) {
	page, err := b.store.PageByLink(ctx, link)
	if err != nil {
		return nil, err
	}
	if !page.IsVisible {
		return nil, store.ErrNotFound
	}

	sections, err := b.store.SectionsByPage(ctx, page.PageName)
	if err != nil {
		return nil, err
	}

	data := &PageData{Page: *page}
	for _, r := range content.ResolveSections(sections) {
		sv := SectionView{Section: r.Section, Kind: r.Kind.String()}

		rows, err := b.store.ContentBySection(ctx, r.Section.SectionName)
		if err != nil {
			return nil, err
		}
		sv.Fields = content.NewFields(rows)

		switch r.Kind {
		case content.KindProjects:
			if sv.Projects, err = b.store.Projects(ctx); err != nil {
				return nil, err
			}
		case content.KindArticles:
			if sv.Articles, err = b.store.Articles(ctx); err != nil {
				return nil, err
			}
		}
		data.Sections = append(data.Sections, sv)
	}

	if data.Nav, err = b.store.NavigationPages(ctx); err != nil {
		return nil, err
	}
	if data.Scroll, err = b.store.VisibleNavigationItems(ctx); err != nil {
		return nil, err
	}
	if data.Menu, err = b.store.VisibleMenuEntries(ctx); err != nil {
		return nil, err
	}

	settings, err := b.store.Settings(ctx)
	if err != nil {
		return nil, err
	}
	data.Head = head.FromSettings(settings)
	if page.PageName != "" {
		if t := settings["site_title"]; t != "" {
			data.Head.SetTitle(page.PageName + " — " + t)
		} else {
			data.Head.SetTitle(page.PageName)
		}
	}

	metrics.PageRenderTotal.WithLabelValues(page.PageLink).Inc()
	return data, nil
}

// FallbackPage returns hardcoded default copy for when the store cannot
// serve a tree.  The visitor sees a minimal hero instead of an error.
func FallbackPage() *PageData {
	fields := content.NewFields([]store.ContentField{
		{ContentType: "title", Content: "Welcome", IsVisible: true},
		{ContentType: "subtitle", Content: "This site is warming up.  Please check back shortly.", IsVisible: true},
	})
	b := head.New()
	b.SetTitle("Portfolio")
	return &PageData{
		Page: store.Page{PageName: "Home", PageLink: "home"},
		Head: b,
		Sections: []SectionView{{
			Section: store.Section{SectionName: "hero", IsVisible: true},
			Kind:    content.KindHero.String(),
			Fields:  fields,
		}},
	}
}
