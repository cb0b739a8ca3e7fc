// Package auth verifies bearer tokens issued by the session service and
// carries the authenticated caller through the request context.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var ErrUnauthorized = errors.New("unauthorized")

// Caller is the authenticated user behind a request.
type Caller struct {
	UserID string
	// Tier is the subscription tier asserted by the token, if any.
	Tier      string
	ExpiresAt time.Time
}

type tokenClaims struct {
	Tier string `json:"tier,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 access tokens.
type JWTManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewJWTManager(secret, issuer string) *JWTManager {
	return &JWTManager{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Issue signs a token for userID. Token issuance belongs to the session
// service; this is used by the seed tool and tests.
func (m *JWTManager) Issue(userID, tier string, ttl time.Duration) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("jwt secret is empty")
	}
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("empty subject")
	}
	now := m.now().UTC()
	claims := tokenClaims{
		Tier: tier,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// Parse verifies raw and returns its caller. Any failure is ErrUnauthorized.
func (m *JWTManager) Parse(raw string) (Caller, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Caller{}, ErrUnauthorized
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil || token == nil || !token.Valid {
		return Caller{}, ErrUnauthorized
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Caller{}, ErrUnauthorized
	}

	return Caller{
		UserID:    claims.Subject,
		Tier:      claims.Tier,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

type callerKey struct{}

func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the authenticated caller, if the request carried one.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok
}
