// internal/store/sections.go
//
// Query helpers for the `site_config` table (sections).
package store

import (
	"context"
	"fmt"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
)

const sectionColumns = `id, section_name, page, layout_type, display_order,
               is_visible, background_color, background_image, created_at, updated_at`

// SectionsByPage returns every section of a page, visible or not, in
// display order with id tie-break.  The admin tabs list this set.
func (s *Store) SectionsByPage(ctx context.Context, page string) ([]Section, error) {
	v, err := s.cache.get(cacheKey(TableSections, page), func() (any, error) {
		metrics.StoreQueryTotal.WithLabelValues(TableSections).Inc()
		const q = `SELECT ` + sectionColumns + `
                     FROM site_config
                    WHERE page = ?
                    ORDER BY display_order, id`
		var rows []Section
		if err := s.db.SelectContext(ctx, &rows, q, page); err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Section), nil
}

// CreateSection inserts one section row.
func (s *Store) CreateSection(ctx context.Context, sec Section) (uint64, error) {
	const q = `INSERT INTO site_config
                   (section_name, page, layout_type, display_order, is_visible,
                    background_color, background_image)
            VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q,
		sec.SectionName, sec.Page, sec.LayoutType, sec.DisplayOrder,
		sec.IsVisible, sec.BackgroundColor, sec.BackgroundImage)
	if err != nil {
		return 0, fmt.Errorf("insert section: %w", err)
	}
	id, _ := res.LastInsertId()
	s.afterWrite(TableSections, "insert")
	return uint64(id), nil
}

// UpdateSection patches one section row.
func (s *Store) UpdateSection(ctx context.Context, sec Section) error {
	const q = `UPDATE site_config
                  SET section_name = ?, page = ?, layout_type = ?,
                      display_order = ?, is_visible = ?,
                      background_color = ?, background_image = ?
                WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, q,
		sec.SectionName, sec.Page, sec.LayoutType, sec.DisplayOrder,
		sec.IsVisible, sec.BackgroundColor, sec.BackgroundImage, sec.ID); err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	s.afterWrite(TableSections, "update")
	return nil
}

// DeleteSection removes one section.  Content fields referencing it by
// name are NOT cascaded.
func (s *Store) DeleteSection(ctx context.Context, id uint64) error {
	return s.deleteByID(ctx, TableSections, id)
}
