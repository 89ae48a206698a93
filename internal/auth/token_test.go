// internal/auth/token_test.go

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testService() TokenService {
	return TokenService{
		Secret:    []byte("test-secret"),
		Issuer:    "folio-test",
		AccessTTL: time.Minute,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	ts := testService()
	signed, exp, err := ts.CreateAccessToken("42", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	if exp <= time.Now().Unix() {
		t.Errorf("expiry %d not in the future", exp)
	}

	claims, err := ts.ParseToken(signed)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "42" || claims.Email != "admin@example.com" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	ts := testService()
	signed, _, _ := ts.CreateAccessToken("42", "a@b.c", "admin")

	other := ts
	other.Secret = []byte("different")
	if _, err := other.ParseToken(signed); err == nil {
		t.Fatal("token signed with another secret must fail")
	}
}

func TestParseToken_RejectsExpired(t *testing.T) {
	ts := testService()
	ts.AccessTTL = -time.Minute
	signed, _, _ := ts.CreateAccessToken("42", "a@b.c", "admin")
	if _, err := ts.ParseToken(signed); err == nil {
		t.Fatal("expired token must fail")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword("hunter2", hash) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestRequireAdmin(t *testing.T) {
	ts := testService()
	handler := RequireAdmin(ts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := ClaimsFromContext(r.Context())
		if c.UserID != "42" {
			t.Errorf("claims missing from context: %+v", c)
		}
		w.WriteHeader(http.StatusOK)
	}))

	// No token.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/pages", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	// Valid token, wrong role.
	viewer, _, _ := ts.CreateAccessToken("7", "v@x.y", "viewer")
	req := httptest.NewRequest(http.MethodGet, "/admin/api/pages", nil)
	req.Header.Set("Authorization", "Bearer "+viewer)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong role: status = %d, want 403", rec.Code)
	}

	// Valid admin token.
	admin, _, _ := ts.CreateAccessToken("42", "a@b.c", "admin")
	req = httptest.NewRequest(http.MethodGet, "/admin/api/pages", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin token: status = %d, want 200", rec.Code)
	}
}
