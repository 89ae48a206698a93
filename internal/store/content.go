// internal/store/content.go
//
// Query helpers for the `site_content` table (content fields).
//
// Context
// -------
// A content field may carry a `_style` sidecar: a sibling row whose
// content_type is "<type>_style" and whose content is a JSON style
// object.  SaveContentWithStyle writes the pair inside one transaction
// so a style can never be saved for a content write that failed, or vice
// versa.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
)

const contentColumns = `id, section, content_type, content, field_type,
               display_order, is_visible, include_in_global_search, created_at, updated_at`

// ContentBySection returns every content row of a section, including
// `_style` sidecars, in display order.  Resolvers filter sidecars out of
// normal listings (internal/content).
func (s *Store) ContentBySection(ctx context.Context, section string) ([]ContentField, error) {
	v, err := s.cache.get(cacheKey(TableContent, section), func() (any, error) {
		metrics.StoreQueryTotal.WithLabelValues(TableContent).Inc()
		const q = `SELECT ` + contentColumns + `
                     FROM site_content
                    WHERE section = ?
                    ORDER BY display_order, id`
		var rows []ContentField
		if err := s.db.SelectContext(ctx, &rows, q, section); err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]ContentField), nil
}

// DeleteContent removes one content row.  The `_style` sidecar, if any,
// is removed in the same transaction so no orphan survives.
func (s *Store) DeleteContent(ctx context.Context, id uint64) error {
	var f ContentField
	const lookup = `SELECT ` + contentColumns + ` FROM site_content WHERE id = ? LIMIT 1`
	if err := s.db.GetContext(ctx, &f, lookup, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete tx: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM site_content WHERE id = ?`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete content: %w", err)
	}
	if !f.IsStyleSidecar() {
		const sidecar = `DELETE FROM site_content WHERE section = ? AND content_type = ?`
		if _, err := tx.ExecContext(ctx, sidecar, f.Section, f.ContentType+"_style"); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("delete style sidecar: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete tx: %w", err)
	}
	s.afterWrite(TableContent, "delete")
	return nil
}

// SaveContentWithStyle writes a content row and, when styleJSON is
// non-nil, upserts its `_style` sidecar in the same transaction.  Pass
// f.ID == 0 to insert, non-zero to update.
func (s *Store) SaveContentWithStyle(ctx context.Context, f ContentField, styleJSON *string) (uint64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin content tx: %w", err)
	}

	id := f.ID
	if id == 0 {
		const ins = `INSERT INTO site_content
                         (section, content_type, content, field_type, display_order,
                          is_visible, include_in_global_search)
                  VALUES (?, ?, ?, ?, ?, ?, ?)`
		res, err := tx.ExecContext(ctx, ins,
			f.Section, f.ContentType, f.Content, f.FieldType, f.DisplayOrder,
			f.IsVisible, f.IncludeInGlobalSearch)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert content: %w", err)
		}
		last, _ := res.LastInsertId()
		id = uint64(last)
	} else {
		const upd = `UPDATE site_content
                        SET section = ?, content_type = ?, content = ?, field_type = ?,
                            display_order = ?, is_visible = ?, include_in_global_search = ?
                      WHERE id = ?`
		if _, err := tx.ExecContext(ctx, upd,
			f.Section, f.ContentType, f.Content, f.FieldType, f.DisplayOrder,
			f.IsVisible, f.IncludeInGlobalSearch, f.ID); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("update content: %w", err)
		}
	}

	if styleJSON != nil {
		// Upsert keyed on (section, content_type); the sidecar inherits the
		// base row's ordering and never appears in search.
		const up = `INSERT INTO site_content
                        (section, content_type, content, field_type, display_order,
                         is_visible, include_in_global_search)
                 VALUES (?, ?, ?, 'style', ?, TRUE, FALSE)
                 ON DUPLICATE KEY UPDATE content = VALUES(content)`
		if _, err := tx.ExecContext(ctx, up,
			f.Section, f.ContentType+"_style", *styleJSON, f.DisplayOrder); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("upsert style sidecar: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit content tx: %w", err)
	}
	s.afterWrite(TableContent, "save")
	return id, nil
}
