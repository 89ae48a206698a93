// internal/store/store.go
//
// Store is the single gateway to the content database.
//
// Context
// -------
// The portfolio holds no authoritative in-memory state: pages, sections,
// content fields, navigation, projects, and articles all live in MySQL
// and are re-read on every render through this type.  Reads flow through
// the keyed query cache (cache.go); writes invalidate the affected
// table's keys and bump the admin-mutation counter.
//
// Two-record mutations that must land together—the adjacent-row
// display_order swap, and a content row with its `_style` sidecar—run
// inside one transaction so a failed second write rolls back the first
// instead of leaving duplicate order values or orphaned style rows.
package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
)

// Table names, also used as cache-key prefixes.
const (
	TablePages      = "pages"
	TableSections   = "site_config"
	TableContent    = "site_content"
	TableNavigation = "navigation"
	TableMenu       = "navigation_menu"
	TableProjects   = "projects"
	TableArticles   = "articles"
	TableSettings   = "site_settings"
)

// orderedTables whitelists the tables whose rows carry a display_order
// column and may be reordered by the admin API.
var orderedTables = map[string]bool{
	TablePages:      true,
	TableSections:   true,
	TableContent:    true,
	TableNavigation: true,
	TableMenu:       true,
}

// Store wraps the database pool and the keyed query cache.
type Store struct {
	db    *sqlx.DB
	cache *queryCache
}

// New returns a Store with the default cache TTL.
func New(db *sqlx.DB) *Store {
	return &Store{db: db, cache: newQueryCache(DefaultCacheTTL)}
}

// DB exposes the underlying pool for callers that need raw access (the
// migration runner, tests).
func (s *Store) DB() *sqlx.DB { return s.db }

// Invalidate drops every cached read for the given table.  Exposed so
// callers performing out-of-band writes can keep the cache honest.
func (s *Store) Invalidate(table string) { s.cache.invalidate(table) }

//
// Reorder swap
//

// OrderedRow pairs a row id with its current display_order value.
type OrderedRow struct {
	ID           uint64
	DisplayOrder int
}

// SwapOrder exchanges the display_order values of two rows in one
// transaction.  Either both updates land or neither does; a duplicate
// display_order can therefore never be produced by a partial failure.
func (s *Store) SwapOrder(ctx context.Context, table string, a, b OrderedRow) error {
	if !orderedTables[table] {
		return fmt.Errorf("table %q is not reorderable", table)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin swap tx: %w", err)
	}

	q := `UPDATE ` + table + ` SET display_order = ? WHERE id = ?`
	if _, err := tx.ExecContext(ctx, q, b.DisplayOrder, a.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("swap first write: %w", err)
	}
	if _, err := tx.ExecContext(ctx, q, a.DisplayOrder, b.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("swap second write: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit swap tx: %w", err)
	}

	s.cache.invalidate(table)
	metrics.AdminMutationTotal.WithLabelValues(table, "reorder").Inc()
	return nil
}

//
// Shared write helpers
//

// afterWrite records a mutation and invalidates the table's cached reads.
func (s *Store) afterWrite(table, op string) {
	s.cache.invalidate(table)
	metrics.AdminMutationTotal.WithLabelValues(table, op).Inc()
}

// deleteByID removes one row.  Callers enforce entity-specific guards
// (system pages) before reaching this point.
func (s *Store) deleteByID(ctx context.Context, table string, id uint64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	s.afterWrite(table, "delete")
	return nil
}
