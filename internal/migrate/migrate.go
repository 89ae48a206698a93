// internal/migrate/migrate.go
//
// Minimal forward-only SQL migration runner.
//
// Context
// -------
// Migrations are plain .sql files under migrations/, named
// NNNN_description.sql.  Applied file names are tracked in
// schema_migrations; files already recorded are skipped.  There is no
// down direction.  MySQL auto-commits DDL, so statements are executed
// one at a time and a failure leaves the run partially applied with
// the failing file unrecorded.
package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type migration struct {
	Name string
	Path string
}

// Apply runs every pending migration under dir, in lexical order.
func Apply(db *sqlx.DB, dir string) error {
	if err := ensureTable(db); err != nil {
		return err
	}
	migs, err := listMigrations(dir)
	if err != nil {
		return err
	}
	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}
	for _, mig := range migs {
		if applied[mig.Name] {
			continue
		}
		zap.S().Infow("applying migration", "name", mig.Name)
		if err := applyMigration(db, mig); err != nil {
			return err
		}
	}
	return nil
}

// Pending returns the names of migrations under dir that have not been
// applied yet.
func Pending(db *sqlx.DB, dir string) ([]string, error) {
	if err := ensureTable(db); err != nil {
		return nil, err
	}
	migs, err := listMigrations(dir)
	if err != nil {
		return nil, err
	}
	applied, err := appliedMigrations(db)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, mig := range migs {
		if !applied[mig.Name] {
			out = append(out, mig.Name)
		}
	}
	return out, nil
}

func ensureTable(db *sqlx.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  name       VARCHAR(255) NOT NULL,
  applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE KEY uq_schema_migrations_name (name)
)`)
	return err
}

func listMigrations(dir string) ([]migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	migs := make([]migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		migs = append(migs, migration{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	sort.Slice(migs, func(i, j int) bool { return migs[i].Name < migs[j].Name })
	return migs, nil
}

func appliedMigrations(db *sqlx.DB) (map[string]bool, error) {
	names := []string{}
	if err := db.Select(&names, `SELECT name FROM schema_migrations`); err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(names))
	for _, name := range names {
		applied[name] = true
	}
	return applied, nil
}

func applyMigration(db *sqlx.DB, mig migration) error {
	content, err := os.ReadFile(mig.Path)
	if err != nil {
		return err
	}
	for _, stmt := range splitStatements(string(content)) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply %s: %w", mig.Name, err)
		}
	}
	_, err = db.Exec(`INSERT INTO schema_migrations (name) VALUES (?)`, mig.Name)
	return err
}

// splitStatements breaks a migration file into individual statements on
// semicolons at end of line.  The MySQL driver rejects multi-statement
// strings unless multiStatements is set in the DSN, which we do not
// require.  Semicolons inside string literals followed by a newline
// would split wrongly; migration files here do not do that.
func splitStatements(src string) []string {
	parts := strings.Split(src, ";\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		stmt := strings.TrimSpace(strings.TrimSuffix(part, ";"))
		if stmt == "" || isCommentOnly(stmt) {
			continue
		}
		out = append(out, stmt)
	}
	return out
}

func isCommentOnly(stmt string) bool {
	for _, line := range strings.Split(stmt, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			return false
		}
	}
	return true
}
