// Package handler contains the gin HTTP handlers.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive integer path parameter. Anything else, including
// zero and negative numbers, is rejected.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
