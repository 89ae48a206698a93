// internal/config/secrets.go
//
// Vault reference resolution.
//
// Context
// -------
// Operators may set any secret-bearing config field to a reference of the
// form `vault:<mount/path>#<key>` instead of a literal value.  After
// Load() has cached the typed Config, the boot sequence calls
// ResolveSecrets with a live Vault client; each reference is swapped for
// the fetched value and the resolved copy replaces the cached pointer.
//
// Only Database.Password and Auth.TokenSecret are secret-bearing today.
// Plain (non-prefixed) values pass through untouched so development
// setups work without a Vault server.

package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const vaultPrefix = "vault:"

// secretTTL bounds how long resolved values may be served from the client
// cache before a re-fetch.
const secretTTL = 15 * time.Minute

// SecretResolver is the minimal Vault-client contract this package needs.
// internal/vault.Client satisfies it.
type SecretResolver interface {
	GetKV(ctx context.Context, secretPath, key string, ttl time.Duration) (string, error)
}

// HasVaultRefs reports whether any config field still carries a `vault:`
// reference.  Callers use it to decide whether a Vault client must be
// constructed at all.
func HasVaultRefs(c *Config) bool {
	return strings.HasPrefix(c.Database.Password, vaultPrefix) ||
		strings.HasPrefix(c.Auth.TokenSecret, vaultPrefix)
}

// ResolveSecrets replaces every `vault:` reference in the cached Config
// and swaps the resolved copy into the atomic pointer.
func ResolveSecrets(ctx context.Context, r SecretResolver) error {
	cfg := *Get() // shallow copy; all secret fields are plain strings

	var err error
	if cfg.Database.Password, err = resolveOne(ctx, r, cfg.Database.Password); err != nil {
		return fmt.Errorf("resolve database password: %w", err)
	}
	if cfg.Auth.TokenSecret, err = resolveOne(ctx, r, cfg.Auth.TokenSecret); err != nil {
		return fmt.Errorf("resolve auth token secret: %w", err)
	}

	current.Store(&cfg)
	zap.S().Infow("config secrets resolved")
	return nil
}

// resolveOne fetches a single reference, or returns the value untouched
// when it is not a reference.
func resolveOne(ctx context.Context, r SecretResolver, val string) (string, error) {
	if !strings.HasPrefix(val, vaultPrefix) {
		return val, nil
	}
	ref := strings.TrimPrefix(val, vaultPrefix)
	path, key, ok := strings.Cut(ref, "#")
	if !ok || path == "" || key == "" {
		return "", fmt.Errorf("malformed vault reference %q", val)
	}
	return r.GetKV(ctx, path, key, secretTTL)
}
