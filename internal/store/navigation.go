// internal/store/navigation.go
//
// Query helpers for the two navigation tables.  `navigation` holds
// in-page scroll links; `navigation_menu` holds header menu buttons.
// The page-link navigation derived from Page rows is a third, parallel
// concept (pages.go); none of the three are reconciled — see DESIGN.md.
package store

import (
	"context"
	"fmt"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
)

//
// navigation (scroll links)
//

// NavigationItems returns every scroll link in display order.
func (s *Store) NavigationItems(ctx context.Context) ([]NavigationItem, error) {
	v, err := s.cache.get(cacheKey(TableNavigation, "all"), func() (any, error) {
		metrics.StoreQueryTotal.WithLabelValues(TableNavigation).Inc()
		const q = `SELECT id, label, target_section, display_order, is_visible,
                          button_type, created_at, updated_at
                     FROM navigation
                    ORDER BY display_order, id`
		var rows []NavigationItem
		if err := s.db.SelectContext(ctx, &rows, q); err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]NavigationItem), nil
}

// VisibleNavigationItems filters NavigationItems for rendering.
func (s *Store) VisibleNavigationItems(ctx context.Context) ([]NavigationItem, error) {
	all, err := s.NavigationItems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]NavigationItem, 0, len(all))
	for _, n := range all {
		if n.IsVisible {
			out = append(out, n)
		}
	}
	return out, nil
}

// CreateNavigationItem inserts one scroll link.
func (s *Store) CreateNavigationItem(ctx context.Context, n NavigationItem) (uint64, error) {
	const q = `INSERT INTO navigation
                   (label, target_section, display_order, is_visible, button_type)
            VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q,
		n.Label, n.TargetSection, n.DisplayOrder, n.IsVisible, n.ButtonType)
	if err != nil {
		return 0, fmt.Errorf("insert navigation item: %w", err)
	}
	id, _ := res.LastInsertId()
	s.afterWrite(TableNavigation, "insert")
	return uint64(id), nil
}

// UpdateNavigationItem patches one scroll link.
func (s *Store) UpdateNavigationItem(ctx context.Context, n NavigationItem) error {
	const q = `UPDATE navigation
                  SET label = ?, target_section = ?, display_order = ?,
                      is_visible = ?, button_type = ?
                WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, q,
		n.Label, n.TargetSection, n.DisplayOrder, n.IsVisible, n.ButtonType, n.ID); err != nil {
		return fmt.Errorf("update navigation item: %w", err)
	}
	s.afterWrite(TableNavigation, "update")
	return nil
}

// DeleteNavigationItem removes one scroll link.
func (s *Store) DeleteNavigationItem(ctx context.Context, id uint64) error {
	return s.deleteByID(ctx, TableNavigation, id)
}

//
// navigation_menu (header buttons)
//

// MenuEntries returns every header button in display order.
func (s *Store) MenuEntries(ctx context.Context) ([]MenuEntry, error) {
	v, err := s.cache.get(cacheKey(TableMenu, "all"), func() (any, error) {
		metrics.StoreQueryTotal.WithLabelValues(TableMenu).Inc()
		const q = `SELECT id, label, target, display_order, is_visible,
                          button_type, created_at, updated_at
                     FROM navigation_menu
                    ORDER BY display_order, id`
		var rows []MenuEntry
		if err := s.db.SelectContext(ctx, &rows, q); err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]MenuEntry), nil
}

// VisibleMenuEntries filters MenuEntries down to the visible buttons.
func (s *Store) VisibleMenuEntries(ctx context.Context) ([]MenuEntry, error) {
	all, err := s.MenuEntries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MenuEntry, 0, len(all))
	for _, m := range all {
		if m.IsVisible {
			out = append(out, m)
		}
	}
	return out, nil
}

// CreateMenuEntry inserts one header button.
func (s *Store) CreateMenuEntry(ctx context.Context, m MenuEntry) (uint64, error) {
	const q = `INSERT INTO navigation_menu
                   (label, target, display_order, is_visible, button_type)
            VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q,
		m.Label, m.Target, m.DisplayOrder, m.IsVisible, m.ButtonType)
	if err != nil {
		return 0, fmt.Errorf("insert menu entry: %w", err)
	}
	id, _ := res.LastInsertId()
	s.afterWrite(TableMenu, "insert")
	return uint64(id), nil
}

// UpdateMenuEntry patches one header button.
func (s *Store) UpdateMenuEntry(ctx context.Context, m MenuEntry) error {
	const q = `UPDATE navigation_menu
                  SET label = ?, target = ?, display_order = ?,
                      is_visible = ?, button_type = ?
                WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, q,
		m.Label, m.Target, m.DisplayOrder, m.IsVisible, m.ButtonType, m.ID); err != nil {
		return fmt.Errorf("update menu entry: %w", err)
	}
	s.afterWrite(TableMenu, "update")
	return nil
}

// DeleteMenuEntry removes one header button.
func (s *Store) DeleteMenuEntry(ctx context.Context, id uint64) error {
	return s.deleteByID(ctx, TableMenu, id)
}
