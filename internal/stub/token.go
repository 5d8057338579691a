package stub

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zenstudio/sessions-client/internal/core/domain"
)

// TokenManager issues and verifies the HS256 bearer tokens the stub hands
// out on login.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the account.
func (tm *TokenManager) Issue(acc *Account) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"uid":   acc.ID,
		"email": acc.Email,
		"admin": acc.Admin,
		"iat":   now.Unix(),
		"exp":   now.Add(tm.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Verify parses a token and returns the embedded user id and admin flag.
// Any parse or signature failure maps to domain.ErrUnauthenticated.
func (tm *TokenManager) Verify(token string) (userID int64, admin bool, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tm.secret, nil
	})
	if err != nil || !tkn.Valid {
		return 0, false, fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, false, fmt.Errorf("%w: malformed claims", domain.ErrUnauthenticated)
	}
	admin, _ = claims["admin"].(bool)
	return int64(uid), admin, nil
}
