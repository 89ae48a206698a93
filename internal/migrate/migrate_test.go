package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func TestSplitStatements(t *testing.T) {
	src := `-- schema
CREATE TABLE a (id INT);

CREATE TABLE b (
  id INT
);
INSERT INTO a VALUES (1);
`
	stmts := splitStatements(src)
	if len(stmts) != 3 {
		t.Fatalf("got %d statements: %#v", len(stmts), stmts)
	}
	if stmts[2] != "INSERT INTO a VALUES (1)" {
		t.Errorf("last statement = %q", stmts[2])
	}
}

func TestApply_SkipsAlreadyApplied(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("0001_first.sql", "CREATE TABLE a (id INT);\n")
	write("0002_second.sql", "CREATE TABLE b (id INT);\n")

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT name FROM schema_migrations`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("0001_first.sql"))
	// Only the second file runs.
	mock.ExpectExec(`CREATE TABLE b`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_migrations`).
		WithArgs("0002_second.sql").
		WillReturnResult(sqlmock.NewResult(2, 1))

	if err := Apply(sqlx.NewDb(db, "sqlmock"), dir); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
