package auth

import (
	"time"

	"fitstream_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried inside the session token. Identity fields mirror what
// handlers need so no user lookup happens on authenticated reads.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256-signed token whose expiry is now + ttl.
func GenerateToken(userID, email, name, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the claims.
// An expired token yields apperrors.ErrTokenExpired, every other
// failure yields apperrors.ErrInvalidToken; both answer 401 but are
// kept distinct for logging.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
