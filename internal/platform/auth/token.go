package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a token's expiry claim has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for malformed or unverifiable tokens.
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenTTL is the absolute token lifetime. There is no refresh mechanism;
// expiry forces re-login.
const TokenTTL = 7 * 24 * time.Hour

type tokenClaims struct {
	NurseID string `json:"nurse_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HMAC-signed bearer tokens carrying the
// nurse id and an absolute expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: TokenTTL}
}

// Issue creates a signed token for the given nurse id.
func (tm *TokenManager) Issue(nurseID string) (string, error) {
	claims := tokenClaims{
		NurseID: nurseID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Parse validates a token and returns the nurse id it carries. Expired tokens
// report ErrTokenExpired; anything else unverifiable reports ErrTokenInvalid.
func (tm *TokenManager) Parse(tokenStr string) (string, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.NurseID == "" {
		return "", ErrTokenInvalid
	}
	return claims.NurseID, nil
}
