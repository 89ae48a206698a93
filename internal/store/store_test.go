// internal/store/store_test.go
//
// Unit-tests for the Store over a sqlmock database.
//
// Context
// -------
// These tests pin down the behaviours the rest of the site leans on:
//
//   • SwapOrder commits both writes, or rolls back on a failed second
//     write so duplicate display_order values cannot be persisted.
//   • Cached reads hit the database once; a mutation invalidates and
//     the next read refetches.
//   • PageByLink maps sql.ErrNoRows to ErrNotFound.
//   • DeletePage refuses system pages.
//   • SaveContentWithStyle rolls back the content write when the style
//     sidecar upsert fails.
//
// Workflow / Structure
// --------------------
// newMockStore builds a sqlmock-backed Store; every sub-test declares
// its expectations and finishes with ExpectationsWereMet.

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(sqlx.NewDb(db, "sqlmock")), mock
}

func TestSwapOrder_CommitsBothWrites(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE site_config SET display_order`).
		WithArgs(2, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE site_config SET display_order`).
		WithArgs(1, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.SwapOrder(context.Background(), TableSections,
		OrderedRow{ID: 10, DisplayOrder: 1},
		OrderedRow{ID: 11, DisplayOrder: 2})
	if err != nil {
		t.Fatalf("SwapOrder: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSwapOrder_RollsBackOnSecondWriteFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE site_config SET display_order`).
		WithArgs(2, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE site_config SET display_order`).
		WithArgs(1, 11).
		WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	err := s.SwapOrder(context.Background(), TableSections,
		OrderedRow{ID: 10, DisplayOrder: 1},
		OrderedRow{ID: 11, DisplayOrder: 2})
	if err == nil {
		t.Fatal("SwapOrder: want error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSwapOrder_RejectsUnknownTable(t *testing.T) {
	s, _ := newMockStore(t)
	err := s.SwapOrder(context.Background(), "admin_users",
		OrderedRow{ID: 1}, OrderedRow{ID: 2})
	if err == nil {
		t.Fatal("want error for non-reorderable table")
	}
}

func pageRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "page_name", "page_link", "display_order", "is_visible",
		"include_in_navigation", "is_system_page", "created_at", "updated_at",
	}).
		AddRow(1, "Home", "home", 1, true, true, false, now, now).
		AddRow(2, "Admin", "admin", 2, true, false, true, now, now)
}

func TestPages_SecondReadServedFromCache(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM pages`).WillReturnRows(pageRows())

	ctx := context.Background()
	if _, err := s.Pages(ctx); err != nil {
		t.Fatalf("first Pages: %v", err)
	}
	// Second call must not reach the database.
	if _, err := s.Pages(ctx); err != nil {
		t.Fatalf("second Pages: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPages_InvalidateForcesRefetch(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM pages`).WillReturnRows(pageRows())
	mock.ExpectQuery(`SELECT .+ FROM pages`).WillReturnRows(pageRows())

	ctx := context.Background()
	if _, err := s.Pages(ctx); err != nil {
		t.Fatalf("first Pages: %v", err)
	}
	s.Invalidate(TablePages)
	if _, err := s.Pages(ctx); err != nil {
		t.Fatalf("post-invalidate Pages: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestNavigationPages_FiltersHiddenAndSystem(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM pages`).WillReturnRows(pageRows())

	nav, err := s.NavigationPages(context.Background())
	if err != nil {
		t.Fatalf("NavigationPages: %v", err)
	}
	if len(nav) != 1 || nav[0].PageLink != "home" {
		t.Fatalf("nav = %+v, want only the home page", nav)
	}
}

func TestPageByLink_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM pages`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.PageByLink(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeletePage_RefusesSystemPage(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT is_system_page FROM pages`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"is_system_page"}).AddRow(true))

	if err := s.DeletePage(context.Background(), 2); !errors.Is(err, ErrSystemPage) {
		t.Fatalf("err = %v, want ErrSystemPage", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveContentWithStyle_RollsBackOnSidecarFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO site_content`).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(`INSERT INTO site_content`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	style := `{"color":"red"}`
	_, err := s.SaveContentWithStyle(context.Background(), ContentField{
		Section:     "hero",
		ContentType: "title",
		Content:     "Welcome",
	}, &style)
	if err == nil {
		t.Fatal("want error when sidecar upsert fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSearchContent_EmptyQuerySkipsDatabase(t *testing.T) {
	s, mock := newMockStore(t)

	hits, err := s.SearchContent(context.Background(), "   ", 10)
	if err != nil {
		t.Fatalf("SearchContent: %v", err)
	}
	if hits != nil {
		t.Fatalf("hits = %+v, want nil", hits)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Fatalf("escapeLike = %q", got)
	}
}
