// internal/vault/vault.go
//
// Vault client wrapper for Folio.
//
// Context
// -------
// Config fields prefixed `vault:` are resolved through this client at
// boot (see internal/config/secrets.go): the database password and the
// admin token signing key.  The wrapper adds two things over the raw
// HashiCorp SDK: a per-reference read cache with TTL so repeated
// resolutions do not hammer the server, and a background loop that keeps
// the access token renewed for the process lifetime.
//
// Public workflow
// ---------------
//  1. cli, err := vault.New(ctx, log.Printf)       // during boot.
//  2. pw,  err := cli.GetKV(ctx, path, key, ttl)   // anywhere in the app.
package vault

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	vault "github.com/hashicorp/vault/api"
)

// renewRetry is how long the renew loop sleeps after a failed probe
// before trying again.
const renewRetry = 30 * time.Second

// Client is safe for concurrent use.  Create once at startup and pass it
// to config.ResolveSecrets.  Zero value is invalid.
type Client struct {
	api   *vault.Client
	logFn func(string, ...any)

	mu      sync.Mutex
	entries map[string]entry // "path#key" → cached value
}

type entry struct {
	value   string
	expires time.Time
}

// New constructs a Vault client and starts a background token-renewal
// loop tied to ctx.
//
// Environment expectations
// ------------------------
// • VAULT_ADDR   – scheme and host of the Vault server.
// • VAULT_TOKEN  – initial token (falls back to ~/.vault-token).
func New(ctx context.Context, logFn func(string, ...any)) (*Client, error) {
	if logFn == nil {
		logFn = func(string, ...any) {}
	}

	cfg := vault.DefaultConfig()
	if err := cfg.ReadEnvironment(); err != nil {
		return nil, fmt.Errorf("vault env cfg: %w", err)
	}
	apiCli, err := vault.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault api: %w", err)
	}
	if tok := os.Getenv("VAULT_TOKEN"); tok != "" {
		apiCli.SetToken(tok)
	}

	c := &Client{api: apiCli, logFn: logFn, entries: make(map[string]entry)}
	go c.keepRenewed(ctx)
	return c, nil
}

// GetKV fetches one key from a KV-v2 secret.  With ttl > 0 the value is
// served from cache until it ages out.
func (c *Client) GetKV(ctx context.Context, secretPath, key string, ttl time.Duration) (string, error) {
	if secretPath == "" || key == "" {
		return "", errors.New("secret path and key must be non-empty")
	}
	ref := secretPath + "#" + key

	if ttl > 0 {
		c.mu.Lock()
		e, ok := c.entries[ref]
		c.mu.Unlock()
		if ok && time.Now().Before(e.expires) {
			return e.value, nil
		}
	}

	mount, rel := splitMount(secretPath)
	sec, err := c.api.KVv2(mount).Get(ctx, rel)
	if err != nil {
		return "", fmt.Errorf("vault get %s: %w", secretPath, err)
	}
	raw, ok := sec.Data[key]
	if !ok {
		return "", fmt.Errorf("key %q not found in secret %q", key, secretPath)
	}
	val, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("value at %s is not a string", ref)
	}

	if ttl > 0 {
		c.mu.Lock()
		c.entries[ref] = entry{value: val, expires: time.Now().Add(ttl)}
		c.mu.Unlock()
	}
	return val, nil
}

// keepRenewed probes the current token and, when it is renewable, hands
// it to an SDK lifetime watcher.  When the watcher stops (lease expiry,
// server restart) the loop probes again.
func (c *Client) keepRenewed(ctx context.Context) {
	for ctx.Err() == nil {
		sec, err := c.api.Auth().Token().RenewSelf(0)
		if err != nil {
			c.logFn("vault: token renew self failed: %v", err)
			sleep(ctx, renewRetry)
			continue
		}
		if sec == nil || !sec.Auth.Renewable {
			c.logFn("vault: token is not renewable, sleeping 1h")
			sleep(ctx, time.Hour)
			continue
		}

		watcher, err := c.api.NewLifetimeWatcher(&vault.LifetimeWatcherInput{
			Secret: sec,
			Grace:  15 * time.Second,
		})
		if err != nil {
			c.logFn("vault: watcher init error: %v", err)
			sleep(ctx, renewRetry)
			continue
		}
		go watcher.Start()

		c.watch(ctx, watcher)
	}
}

// watch drains one lifetime watcher until it finishes or ctx ends.
func (c *Client) watch(ctx context.Context, w *vault.LifetimeWatcher) {
	defer w.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-w.DoneCh():
			if err != nil {
				c.logFn("vault: token renewal stopped: %v", err)
			}
			sleep(ctx, 15*time.Second)
			return
		case ev := <-w.RenewCh():
			if ev != nil && ev.Secret != nil && ev.Secret.Auth != nil {
				c.logFn("vault: token renewed, ttl=%ds", ev.Secret.Auth.LeaseDuration)
			}
		}
	}
}

// splitMount separates "secret/folio" into the KV mount and the path
// under it.
func splitMount(p string) (mount, rel string) {
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i], p[i+1:]
	}
	return p, ""
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
