package handler

import (
	"strconv"

	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
)

// parseID reads a numeric path parameter. A malformed id is reported as
// a missing resource, never as a bad request.
func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrResourceNotFound
	}
	return id, nil
}
