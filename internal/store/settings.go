// internal/store/settings.go
//
// Helpers for fetching key-value settings from the `site_settings` table.
// The query runs through the keyed cache, and the resulting map drives
// the default <title>, meta description, and theme head tags.
package store

import (
	"context"
	"fmt"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
)

// Settings returns a map[key]value of every site setting.
func (s *Store) Settings(ctx context.Context) (map[string]string, error) {
	v, err := s.cache.get(cacheKey(TableSettings, "all"), func() (any, error) {
		metrics.StoreQueryTotal.WithLabelValues(TableSettings).Inc()
		const q = "SELECT `key`, value FROM site_settings"
		rows := make([]struct {
			Key   string `db:"key"`
			Value string `db:"value"`
		}, 0, 8) // small default cap

		if err := s.db.SelectContext(ctx, &rows, q); err != nil {
			return nil, err
		}

		cfg := make(map[string]string, len(rows))
		for _, r := range rows {
			cfg[r.Key] = r.Value
		}
		return cfg, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]string), nil
}

// SetSetting upserts one key-value pair.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	const q = "INSERT INTO site_settings (`key`, value) VALUES (?, ?)" +
		" ON DUPLICATE KEY UPDATE value = VALUES(value)"
	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	s.afterWrite(TableSettings, "upsert")
	return nil
}
