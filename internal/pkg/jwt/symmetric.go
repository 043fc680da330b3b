package jwt

import (
	"errors"
	"strconv"
	"time"

	libjwt "github.com/golang-jwt/jwt/v5"
)

// Symmetric signs and verifies tokens with a shared HS512 secret.
type Symmetric struct {
	secret    []byte
	issuer    string
	audiences []string
	ttl       time.Duration
	clock     clocker
	uuid      generator
}

// NewHS512 builds a Symmetric signer. The secret must be at least the HS512
// block size of 64 bytes.
func NewHS512(cfg Config) (*Symmetric, error) {
	if len(cfg.Secret) < 64 {
		return nil, ErrSigningKeyTooShort
	}
	return &Symmetric{
		secret:    cfg.Secret,
		issuer:    cfg.Issuer,
		audiences: cfg.Audiences,
		ttl:       cfg.TTL,
		clock:     cfg.Clock,
		uuid:      cfg.UUID,
	}, nil
}

// Generate issues a token for the user, valid from now until now+TTL.
func (s *Symmetric) Generate(uid int64, email string) (string, error) {
	now := s.clock.Now()

	claims := Claims{
		RegisteredClaims: libjwt.RegisteredClaims{
			ID:        s.uuid.Generate(),
			Subject:   strconv.FormatInt(uid, 10),
			Issuer:    s.issuer,
			Audience:  s.audiences,
			IssuedAt:  libjwt.NewNumericDate(now),
			NotBefore: libjwt.NewNumericDate(now),
			ExpiresAt: libjwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID:    uid,
		UserEmail: email,
	}
	return libjwt.NewWithClaims(libjwt.SigningMethodHS512, claims).SignedString(s.secret)
}

// Verify parses tokenStr, checks the signature, method, issuer, audience and
// lifetime, and returns the claims.
func (s *Symmetric) Verify(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := libjwt.ParseWithClaims(tokenStr, &claims,
		func(t *libjwt.Token) (any, error) {
			if t.Method != libjwt.SigningMethodHS512 {
				return nil, ErrInvalidSigningMethod
			}
			return s.secret, nil
		},
		libjwt.WithIssuer(s.issuer),
		libjwt.WithAudience(s.audiences...),
		libjwt.WithValidMethods([]string{libjwt.SigningMethodHS512.Alg()}),
		libjwt.WithIssuedAt(),
		libjwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, libjwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, err
	}
	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
