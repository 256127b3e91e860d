package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"projecthub/internal/constants"
)

// ListParams holds the offset/limit windowing parameters for list endpoints.
type ListParams struct {
	Skip  int
	Limit int
}

// GetListParams extracts and validates skip/limit query parameters.
func GetListParams(c *gin.Context) ListParams {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultListLimit)))

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > constants.MaxListLimit {
		limit = constants.DefaultListLimit
	}

	return ListParams{
		Skip:  skip,
		Limit: limit,
	}
}
