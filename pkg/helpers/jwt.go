package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager signs and verifies identity assertions binding a user id to a
// role. Tokens are stateless: nothing is persisted server-side, so a token
// stays valid until it expires (if a TTL is configured) or the secret rotates.
type TokenManager struct {
	Secret []byte
	TTL    time.Duration
}

var defaultManager *TokenManager

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	m := &TokenManager{Secret: []byte(secret), TTL: ttl}
	defaultManager = m
	return m
}

// DefaultTokenManager returns the last constructed TokenManager (used for auto-wiring routes)
func DefaultTokenManager() *TokenManager { return defaultManager }

type Claims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Generate mints a signed token for the given user id and role.
// With TTL == 0 no expiry claim is embedded.
func (m *TokenManager) Generate(userID int64, role string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if m.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(m.TTL))
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// Parse verifies the signature and returns the claims. It fails closed: any
// structural corruption, signature mismatch, or unexpected signing method
// yields an error, never a partial identity.
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
