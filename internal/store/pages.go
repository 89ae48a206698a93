// internal/store/pages.go
//
// Query helpers for the `pages` table.
//
// Context
// -------
// Page rows drive routing (`page_link`) and the page-link navigation
// (`include_in_navigation`).  `page_link` is derived from `page_name`
// once, at creation, and never re-derived on rename so published URLs
// stay stable.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/routing"
)

const pageColumns = `id, page_name, page_link, display_order, is_visible,
               include_in_navigation, is_system_page, created_at, updated_at`

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: row not found")

// ErrSystemPage is returned when a write targets a system page.
var ErrSystemPage = errors.New("store: system page")

// Pages returns every page ordered for display.  Duplicate display_order
// values tie-break on id, which preserves insertion order.
func (s *Store) Pages(ctx context.Context) ([]Page, error) {
	v, err := s.cache.get(cacheKey(TablePages, "all"), func() (any, error) {
		metrics.StoreQueryTotal.WithLabelValues(TablePages).Inc()
		const q = `SELECT ` + pageColumns + `
                     FROM pages
                    ORDER BY display_order, id`
		var rows []Page
		if err := s.db.SelectContext(ctx, &rows, q); err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Page), nil
}

// PageByLink fetches one page by its link slug.
func (s *Store) PageByLink(ctx context.Context, link string) (*Page, error) {
	v, err := s.cache.get(cacheKey(TablePages, "link:"+link), func() (any, error) {
		metrics.StoreQueryTotal.WithLabelValues(TablePages).Inc()
		const q = `SELECT ` + pageColumns + `
                     FROM pages
                    WHERE page_link = ?
                    LIMIT 1`
		var rec Page
		if err := s.db.GetContext(ctx, &rec, q, link); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return &rec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Page), nil
}

// NavigationPages returns the visible, non-system pages flagged for
// navigation, in display order.  This is the page-link navigation; the
// in-page scroll links live in `navigation` (see navigation.go).
func (s *Store) NavigationPages(ctx context.Context) ([]Page, error) {
	all, err := s.Pages(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Page, 0, len(all))
	for _, p := range all {
		if p.IsVisible && p.IncludeInNavigation && !p.IsSystemPage {
			out = append(out, p)
		}
	}
	return out, nil
}

// CreatePage inserts a page, deriving page_link from page_name.  The
// derivation happens here and only here; UpdatePage never touches the
// link.
func (s *Store) CreatePage(ctx context.Context, p Page) (uint64, error) {
	p.PageLink = routing.MakeSlug(p.PageName)
	const q = `INSERT INTO pages
                   (page_name, page_link, display_order, is_visible,
                    include_in_navigation, is_system_page)
            VALUES (?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q,
		p.PageName, p.PageLink, p.DisplayOrder, p.IsVisible,
		p.IncludeInNavigation, p.IsSystemPage)
	if err != nil {
		return 0, fmt.Errorf("insert page: %w", err)
	}
	id, _ := res.LastInsertId()
	s.afterWrite(TablePages, "insert")
	return uint64(id), nil
}

// UpdatePage patches the mutable columns of one page.  page_link is
// intentionally absent: renames keep their original URL.
func (s *Store) UpdatePage(ctx context.Context, p Page) error {
	const q = `UPDATE pages
                  SET page_name = ?, display_order = ?, is_visible = ?,
                      include_in_navigation = ?
                WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, q,
		p.PageName, p.DisplayOrder, p.IsVisible, p.IncludeInNavigation, p.ID); err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	s.afterWrite(TablePages, "update")
	return nil
}

// DeletePage removes a non-system page.  System pages refuse deletion.
func (s *Store) DeletePage(ctx context.Context, id uint64) error {
	var isSystem bool
	if err := s.db.GetContext(ctx, &isSystem,
		`SELECT is_system_page FROM pages WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if isSystem {
		return fmt.Errorf("delete page %d: %w", id, ErrSystemPage)
	}
	// Sections are NOT cascaded; orphaned sections stay until edited.
	return s.deleteByID(ctx, TablePages, id)
}
