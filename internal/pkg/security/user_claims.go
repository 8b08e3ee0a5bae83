package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims carries the authenticated subject inside the token.
type UserClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}
