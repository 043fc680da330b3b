package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")
	ErrSigningKeyTooShort   = errors.New("HS512 signing key must be at least 64 bytes (512 bits)")
	ErrTokenExpired         = errors.New("JWT token has expired")
	ErrInvalidToken         = errors.New("invalid token")
)

// JWT issues and checks access tokens. The router's auth middleware calls
// Verify; the login and verify-OTP usecases call Generate.
type JWT interface {
	Generate(uid int64, email string) (string, error)
	Verify(tokenStr string) (Claims, error)
}

// Claims extends the registered claim set with the authenticated user.
// UserID is serialized as a string to survive JSON number precision limits.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id,string"`
	UserEmail string `json:"user_email"`
}

// Config collects the inputs for a token implementation.
type Config struct {
	Secret    []byte
	Issuer    string
	Audiences []string
	TTL       time.Duration

	// Clock supplies issued-at and expiry times; UUID supplies token IDs.
	Clock clocker
	UUID  generator
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type authKey struct{}

// SetAuth stores verified claims on the request context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, authKey{}, clm)
}

// GetAuth returns the claims placed on the context by the auth middleware,
// or nil for unauthenticated requests.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(authKey{}).(Claims)
	if !ok {
		return nil
	}
	return &clm
}
