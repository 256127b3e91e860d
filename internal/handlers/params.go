package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "projecthub/internal/errors"
)

// parseIDParam reads the :id path parameter as a numeric identifier.
// On failure it writes the 400 response and returns ok=false.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}
