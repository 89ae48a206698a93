// internal/store/users.go
//
// Query helpers for the `admin_users` table.  Reads bypass the keyed
// cache: credential lookups must always see the latest row.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// AdminUserByEmail fetches one admin user for credential verification.
func (s *Store) AdminUserByEmail(ctx context.Context, email string) (*AdminUser, error) {
	const q = `SELECT id, email, password_hash, role, created_at, updated_at
                 FROM admin_users
                WHERE email = ?
                LIMIT 1`
	var u AdminUser
	if err := s.db.GetContext(ctx, &u, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CreateAdminUser inserts one admin user.  The caller supplies a bcrypt
// hash, never a plaintext password.
func (s *Store) CreateAdminUser(ctx context.Context, u AdminUser) (uint64, error) {
	const q = `INSERT INTO admin_users (email, password_hash, role) VALUES (?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, u.Email, u.PasswordHash, u.Role)
	if err != nil {
		return 0, fmt.Errorf("insert admin user: %w", err)
	}
	id, _ := res.LastInsertId()
	return uint64(id), nil
}
