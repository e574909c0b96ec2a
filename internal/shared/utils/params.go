package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"studium/internal/shared/errors"
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "book", "request").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// CurrentUserID returns the authenticated user ID placed into the context
// by the auth middleware.
func CurrentUserID(c *gin.Context) (uint, error) {
	val, ok := c.Get("user_id")
	if !ok {
		return 0, errors.NewUnauthorizedError("missing authenticated user")
	}
	id, ok := val.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError("invalid authenticated user")
	}
	return id, nil
}
