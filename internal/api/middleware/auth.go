package middleware

import (
	"context"
	"strings"

	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/consts"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/redis"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/security"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserRoleKey = "user_role"
	CtxTokenKey    = "auth_token"
)

// ExtractToken resolves the request token: Authorization bearer header
// first, then the auth cookie, then the query string.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(consts.AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	return c.Query("token")
}

// AuthMiddleware verifies the JWT, rejects denylisted (logged out)
// tokens, and loads the current user into the request context.
func AuthMiddleware(userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			response.Error(c, service.ErrNotAuthenticated)
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Error(c, service.ErrTokenInvalid)
			return
		}

		denied, err := redis.GetValue(c.Request.Context(), consts.TokenDenyKey+signature)
		if err != nil {
			response.Error(c, err)
			return
		}
		if denied != "" {
			response.Error(c, service.ErrTokenInvalid)
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Error(c, service.ErrTokenInvalid)
			return
		}

		user, err := userRepo.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, err)
			return
		}
		if user == nil {
			response.Error(c, service.ErrUserGone)
			return
		}

		c.Set(CtxUserIDKey, user.ID)
		c.Set(CtxUserRoleKey, user.Role)
		c.Set(CtxTokenKey, tokenString)

		newCtx := context.WithValue(c.Request.Context(), CtxUserIDKey, user.ID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
