// Package session carries the authenticated user through a request context.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session identifies the user a request acts for.
type Session struct {
	UserID string
	Demo   bool
}

var (
	// ErrNoSession means the request carried no usable credentials.
	ErrNoSession = errors.New("no session")
	// ErrInvalidToken means a bearer token was present but rejected.
	ErrInvalidToken = errors.New("invalid token")
)

// DemoHeader names the header that selects the user in demo mode.
const DemoHeader = "X-Demo-User"

type contextKey struct{}

// WithSession returns a child context carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	if !ok || s.UserID == "" {
		return Session{}, false
	}
	return s, true
}

// Authenticator resolves the session of an incoming request. With a signing
// secret it requires an HS256 bearer token whose subject is the user id;
// without one it runs in demo mode and trusts DemoHeader.
type Authenticator struct {
	secret     []byte
	demoUserID string
	tokenTTL   time.Duration
	nowFn      func() time.Time
}

// NewAuthenticator builds an Authenticator. An empty secret enables demo mode.
func NewAuthenticator(secret, demoUserID string, tokenTTL time.Duration) *Authenticator {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &Authenticator{
		secret:     []byte(secret),
		demoUserID: demoUserID,
		tokenTTL:   tokenTTL,
		nowFn:      time.Now,
	}
}

// WithClock overrides the time provider (used primarily in tests).
func (a *Authenticator) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		a.nowFn = nowFn
	}
}

// DemoMode reports whether tokens are bypassed.
func (a *Authenticator) DemoMode() bool {
	return len(a.secret) == 0
}

// Authenticate extracts the session from r.
func (a *Authenticator) Authenticate(r *http.Request) (Session, error) {
	if a.DemoMode() {
		userID := strings.TrimSpace(r.Header.Get(DemoHeader))
		if userID == "" {
			userID = a.demoUserID
		}
		if userID == "" {
			return Session{}, ErrNoSession
		}
		return Session{UserID: userID, Demo: true}, nil
	}

	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return Session{}, ErrNoSession
	}

	userID, err := a.verify(strings.TrimSpace(token))
	if err != nil {
		return Session{}, err
	}
	return Session{UserID: userID}, nil
}

// IssueToken signs a token for userID valid for the configured TTL.
func (a *Authenticator) IssueToken(userID string) (string, error) {
	if a.DemoMode() {
		return "", errors.New("no signing secret configured")
	}
	now := a.nowFn()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Authenticator) verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.nowFn),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
