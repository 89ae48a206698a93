// internal/store/visits.go
//
// Write paths for the `visits` and `contact_messages` tables.  Both
// tables are append-only from the site's point of view; neither goes
// through the keyed query cache.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// InsertVisit records one traffic row.  IDs are generated here so the
// caller never has to care about key allocation.
func (s *Store) InsertVisit(ctx context.Context, v Visit) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	const q = `INSERT INTO visits
                 (id, path, referrer, ip, browser, os, device, is_bot, country_iso, city)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q,
		v.ID, v.Path, v.Referrer, v.IP, v.Browser, v.OS, v.Device, v.IsBot, v.CountryISO, v.City)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// VisitCount returns the total number of recorded visits.
func (s *Store) VisitCount(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM visits`); err != nil {
		return 0, err
	}
	return n, nil
}

// InsertContactMessage persists one contact-form submission.
func (s *Store) InsertContactMessage(ctx context.Context, m ContactMessage) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	const q = `INSERT INTO contact_messages (id, name, email, subject, body)
               VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, q, m.ID, m.Name, m.Email, m.Subject, m.Body); err != nil {
		return "", fmt.Errorf("insert contact message: %w", err)
	}
	return m.ID, nil
}

// ContactMessages lists submissions newest-first for the admin surface.
func (s *Store) ContactMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	const q = `SELECT id, name, email, subject, body, created_at
                 FROM contact_messages
                ORDER BY created_at DESC
                LIMIT ?`
	var out []ContactMessage
	if err := s.db.SelectContext(ctx, &out, q, limit); err != nil {
		return nil, err
	}
	return out, nil
}
