// internal/config/secrets_test.go
//
// Unit-tests for vault-reference resolution.
//
// A fake resolver stands in for the real Vault client so the tests run
// without a server.

package config

import (
	"context"
	"testing"
	"time"
)

type fakeResolver struct {
	values map[string]string
}

func (f *fakeResolver) GetKV(_ context.Context, path, key string, _ time.Duration) (string, error) {
	return f.values[path+"#"+key], nil
}

func TestResolveSecrets_SwapsReferences(t *testing.T) {
	current.Store(&Config{
		Database: Database{DSN: "folio:%s@tcp(localhost)/folio", Password: "vault:kv/folio#db_password"},
		Auth:     Auth{TokenSecret: "vault:kv/folio#token_secret"},
	})

	r := &fakeResolver{values: map[string]string{
		"kv/folio#db_password":  "s3cret",
		"kv/folio#token_secret": "signing-key",
	}}

	if err := ResolveSecrets(context.Background(), r); err != nil {
		t.Fatalf("ResolveSecrets: %v", err)
	}

	got := Get()
	if got.Database.Password != "s3cret" {
		t.Fatalf("password = %q, want s3cret", got.Database.Password)
	}
	if got.Auth.TokenSecret != "signing-key" {
		t.Fatalf("token secret = %q, want signing-key", got.Auth.TokenSecret)
	}
}

func TestResolveSecrets_PlainValuesUntouched(t *testing.T) {
	current.Store(&Config{
		Database: Database{Password: "literal"},
		Auth:     Auth{TokenSecret: "also-literal"},
	})

	if err := ResolveSecrets(context.Background(), &fakeResolver{}); err != nil {
		t.Fatalf("ResolveSecrets: %v", err)
	}
	if Get().Database.Password != "literal" || Get().Auth.TokenSecret != "also-literal" {
		t.Fatalf("plain values were mutated: %+v", Get())
	}
}

func TestResolveSecrets_MalformedReference(t *testing.T) {
	current.Store(&Config{
		Database: Database{Password: "vault:no-key-part"},
	})

	if err := ResolveSecrets(context.Background(), &fakeResolver{}); err == nil {
		t.Fatal("expected error for malformed reference, got nil")
	}
}

func TestHasVaultRefs(t *testing.T) {
	if HasVaultRefs(&Config{Database: Database{Password: "plain"}}) {
		t.Fatal("plain config reported vault refs")
	}
	if !HasVaultRefs(&Config{Auth: Auth{TokenSecret: "vault:kv/folio#x"}}) {
		t.Fatal("vault ref not detected")
	}
}
