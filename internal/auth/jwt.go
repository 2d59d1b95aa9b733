package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// FinanceScope is the only scope a session can carry.
const FinanceScope = "finance"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// SessionManager handles session token generation and validation.
type SessionManager struct {
	secretKey  []byte
	sessionTTL time.Duration
	now        func() time.Time
}

// Claims represents the JWT claims of a finance session.
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// NewSessionManager creates a session manager with the given secret and lifetime.
func NewSessionManager(secretKey []byte, sessionTTL time.Duration) *SessionManager {
	return &SessionManager{
		secretKey:  secretKey,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// NewEphemeralSessionManager signs with a random secret, so sessions end
// when the process exits.
func NewEphemeralSessionManager(sessionTTL time.Duration) (*SessionManager, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}
	return NewSessionManager(secret, sessionTTL), nil
}

// Generate creates a new session token and returns it with its expiry.
func (m *SessionManager) Generate() (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.sessionTTL)
	claims := &Claims{
		Scope: FinanceScope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a session token, returning the claims if valid.
func (m *SessionManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Scope != FinanceScope {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
