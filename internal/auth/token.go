// internal/auth/token.go
//
// Admin token issuance and verification.
//
// The admin surface is gated by short-lived HS256 bearer tokens signed
// with a server-side secret (resolvable through Vault).  Passwords are
// stored as bcrypt digests in `admin_users`; no credential ever lives
// in code or config.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken covers every parse or claim failure; callers only
// need the binary outcome.
var ErrInvalidToken = errors.New("auth: invalid token")

// Claims is the verified identity extracted from a token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// TokenService signs and verifies admin access tokens.
type TokenService struct {
	Secret    []byte
	Issuer    string
	AccessTTL time.Duration
}

// HashPassword produces a bcrypt digest for storage.
func HashPassword(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	return string(b), err
}

// VerifyPassword reports whether raw matches the stored digest.
func VerifyPassword(raw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}

// CreateAccessToken signs a token for the given identity and returns it
// with its Unix expiry.
func (t TokenService) CreateAccessToken(userID, email, role string) (string, int64, error) {
	now := time.Now().UTC()
	exp := now.Add(t.AccessTTL)
	claims := jwt.MapClaims{
		"iss":   t.Issuer,
		"sub":   userID,
		"typ":   "access",
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.Secret)
	return signed, exp.Unix(), err
}

// ParseToken verifies a signed token and returns its claims.
func (t TokenService) ParseToken(tokenStr string) (Claims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.Secret, nil
	}, jwt.WithIssuer(t.Issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != "access" {
		return Claims{}, ErrInvalidToken
	}

	out := Claims{}
	out.UserID, _ = claims["sub"].(string)
	out.Email, _ = claims["email"].(string)
	out.Role, _ = claims["role"].(string)
	if out.UserID == "" {
		return Claims{}, ErrInvalidToken
	}
	return out, nil
}
