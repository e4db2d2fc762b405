// Package auth issues and verifies the signed session tokens that bind a
// browser session to a derived wallet identity.
//
// Tokens are HS256 JWTs signed with a subkey expanded from the process-wide
// server secret. The wallet seed is never embedded in a token: the payload
// carries only the identity and the public address, which is enough for the
// server to re-derive the key material on demand.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/walletgate/walletgate/internal/common"
	"github.com/walletgate/walletgate/internal/cryptox"
	"github.com/walletgate/walletgate/internal/identity"
)

// SessionPayload is what a verified token proves: which identifier was
// checked, via which flow, and the wallet address derived for it.
type SessionPayload struct {
	Identity      string
	Flow          identity.Flow
	WalletAddress string
}

// Claims extends the registered JWT claims with the session payload.
type Claims struct {
	jwt.RegisteredClaims
	Identity      string        `json:"idn"`
	Flow          identity.Flow `json:"flw"`
	WalletAddress string        `json:"adr"`
}

// Service signs and verifies session tokens.
type Service struct {
	signingKey []byte
	ttl        time.Duration
}

// NewService expands the signing subkey from the server secret. An empty
// secret is a misconfiguration and is rejected, never defaulted.
func NewService(secret []byte, ttl time.Duration) (*Service, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty server secret", common.ErrInvalidInput)
	}

	key, err := cryptox.Subkey(secret, cryptox.SigningKeyInfo)
	if err != nil {
		return nil, err
	}

	return &Service{signingKey: key, ttl: ttl}, nil
}

// TTL returns the configured session lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs the payload into a token expiring after the service TTL.
func (s *Service) Issue(p SessionPayload) (string, error) {
	return s.IssueWithTTL(p, s.ttl)
}

// IssueWithTTL signs the payload with an explicit lifetime. Each token gets
// a unique jti claim.
func (s *Service) IssueWithTTL(p SessionPayload, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Identity:      p.Identity,
		Flow:          p.Flow,
		WalletAddress: p.WalletAddress,
	})

	tokenString, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Verify validates the signature and expiry and returns the embedded
// payload. Expected failures come back as common.ErrTokenExpired or
// common.ErrInvalidToken; malformed input never panics.
func (s *Service) Verify(tokenString string) (*SessionPayload, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &SessionPayload{
		Identity:      claims.Identity,
		Flow:          claims.Flow,
		WalletAddress: claims.WalletAddress,
	}, nil
}
