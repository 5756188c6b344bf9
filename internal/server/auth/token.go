// Package auth implements the two credential primitives of the service:
// password hashing/verification and signed bearer-token issuance/verification.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/refurnish/authcore/internal/common"
)

// Claims is the claim set carried by issued bearer tokens: the standard
// registered claims plus the principal's user id and role. No other claims
// are trusted.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Role   string `json:"role"`
}

// Principal is the authenticated identity recovered from a verified token.
type Principal struct {
	ID   string
	Role string
}

// TokenIssuer signs and verifies bearer tokens with a process-wide HS256
// secret loaded once at startup. Rotating the secret invalidates all
// outstanding tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// TTL returns the validity duration applied to issued tokens.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue produces a signed token binding the principal's id and role, expiring
// after the configured TTL.
func (i *TokenIssuer) Issue(userID, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify validates the token's signature and expiry and recovers the embedded
// principal. Every failure mode (bad signature, malformed token, wrong signing
// method, expired, missing subject) collapses to common.ErrInvalidToken so no
// parser detail crosses the authorization boundary.
func (i *TokenIssuer) Verify(tokenString string) (Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, common.ErrInvalidToken
	}

	if claims.UserID == "" {
		return Principal{}, common.ErrInvalidToken
	}

	return Principal{ID: claims.UserID, Role: claims.Role}, nil
}
