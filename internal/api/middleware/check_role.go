package middleware

import (
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/response"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckRoles allows the request through when the authenticated user
// holds at least one of the listed roles.
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRoleKey)

		for _, required := range requiredRoles {
			if role == required {
				c.Next()
				return
			}
		}

		response.Error(c, service.ErrForbidden)
	}
}
