// internal/admin/service_test.go
//
// Unit-tests for the admin service: validation gating, neighbor
// resolution for reordering, and login outcomes.

package admin

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/auth"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
)

func newService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	st := store.New(sqlx.NewDb(db, "sqlmock"))
	ts := auth.TokenService{Secret: []byte("test"), Issuer: "t", AccessTTL: time.Minute}
	return New(st, ts), mock
}

func TestCreatePage_ValidationBlocksWrite(t *testing.T) {
	svc, mock := newService(t)

	// Empty page_name must fail before any SQL runs.
	_, err := svc.CreatePage(context.Background(), PageInput{PageName: ""})
	if StatusOf(err) != 400 {
		t.Fatalf("err = %v, want a 400 ServiceError", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected SQL: %v", err)
	}
}

func TestMoveSection_SwapsWithNeighbor(t *testing.T) {
	svc, mock := newService(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM site_config`).
		WithArgs("home").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "section_name", "page", "layout_type", "display_order",
			"is_visible", "background_color", "background_image",
			"created_at", "updated_at",
		}).
			AddRow(10, "hero", "home", "hero", 1, true, nil, nil, now, now).
			AddRow(11, "about", "home", "text", 2, true, nil, nil, now, now))

	// Moving "about" up swaps its order with "hero".
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE site_config SET display_order`).
		WithArgs(1, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE site_config SET display_order`).
		WithArgs(2, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.MoveSection(context.Background(), MoveInput{
		ID: 11, Direction: "up", Scope: "home",
	})
	if err != nil {
		t.Fatalf("MoveSection: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestMoveSection_EdgeRowRefuses(t *testing.T) {
	svc, mock := newService(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM site_config`).
		WithArgs("home").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "section_name", "page", "layout_type", "display_order",
			"is_visible", "background_color", "background_image",
			"created_at", "updated_at",
		}).AddRow(10, "hero", "home", "hero", 1, true, nil, nil, now, now))

	err := svc.MoveSection(context.Background(), MoveInput{
		ID: 10, Direction: "up", Scope: "home",
	})
	if StatusOf(err) != 400 {
		t.Fatalf("err = %v, want 400 for edge row", err)
	}
}

func TestMoveSection_RequiresScope(t *testing.T) {
	svc, _ := newService(t)
	err := svc.MoveSection(context.Background(), MoveInput{ID: 1, Direction: "up"})
	if StatusOf(err) != 400 {
		t.Fatalf("err = %v, want 400 for missing scope", err)
	}
}

func TestLogin(t *testing.T) {
	svc, mock := newService(t)
	now := time.Now()

	hash, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "email", "password_hash", "role", "created_at", "updated_at",
		}).AddRow(1, "admin@example.com", hash, "admin", now, now)
	}

	// Wrong password.
	mock.ExpectQuery(`SELECT .+ FROM admin_users`).
		WithArgs("admin@example.com").
		WillReturnRows(userRows())
	_, err = svc.Login(context.Background(), LoginInput{
		Email: "admin@example.com", Password: "wrong password",
	})
	if StatusOf(err) != 401 {
		t.Fatalf("wrong password: err = %v, want 401", err)
	}

	// Unknown user maps to the same 401.
	mock.ExpectQuery(`SELECT .+ FROM admin_users`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)
	_, err = svc.Login(context.Background(), LoginInput{
		Email: "ghost@example.com", Password: "whatever1",
	})
	if StatusOf(err) != 401 {
		t.Fatalf("unknown user: err = %v, want 401", err)
	}

	// Correct credentials.
	mock.ExpectQuery(`SELECT .+ FROM admin_users`).
		WithArgs("admin@example.com").
		WillReturnRows(userRows())
	res, err := svc.Login(context.Background(), LoginInput{
		Email: "admin@example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken == "" || res.Role != "admin" {
		t.Errorf("result = %+v", res)
	}
}

func TestSaveContent_PassesStyleThrough(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO site_content`).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec(`INSERT INTO site_content`).
		WillReturnResult(sqlmock.NewResult(6, 1))
	mock.ExpectCommit()

	style := `{"color":"red"}`
	id, err := svc.SaveContent(context.Background(), ContentInput{
		Section:     "hero",
		ContentType: "title",
		Content:     "Welcome",
		IsVisible:   true,
		Style:       &style,
	})
	if err != nil {
		t.Fatalf("SaveContent: %v", err)
	}
	if id != 5 {
		t.Errorf("id = %d, want 5", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
