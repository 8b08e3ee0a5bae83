package security

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpireDays applies when the configured expiry is absent or
// unparseable.
const DefaultExpireDays = 30

// ExpireDays returns the configured token lifetime in days. The config
// value is either a bare number ("30") or day-suffixed ("30d").
func ExpireDays() int {
	raw := strings.TrimSpace(config.Cfg.JWT.Expire)
	raw = strings.TrimSuffix(raw, "d")
	if days, err := strconv.Atoi(raw); err == nil && days > 0 {
		return days
	}
	return DefaultExpireDays
}

// GenerateToken signs a new token for the given user id.
func GenerateToken(userID uint64) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ExpireDays()) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "aadil-rasheed-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(config.Cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken verifies signature and expiry and returns the claims.
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Cfg.JWT.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token invalid or expired")
	}

	return claims, nil
}

// ExtractSignature returns the signature segment of a compact token.
// Used as the redis denylist key after logout.
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.New("malformed token")
	}
	return parts[2], nil
}
