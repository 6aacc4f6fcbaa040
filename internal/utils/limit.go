package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onboardai/task-engine/internal/constants"
)

// GetLimitParam extracts and clamps the limit query parameter.
func GetLimitParam(c *gin.Context, defaultLimit int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > constants.MaxListLimit {
		return constants.MaxListLimit
	}
	return limit
}
