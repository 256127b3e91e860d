package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"projecthub/internal/auth"
	"projecthub/internal/constants"
	"projecthub/internal/database"
	apierrors "projecthub/internal/errors"
	"projecthub/internal/models"
)

// RequireAuth validates the bearer token and resolves it to an active user.
// The user ID is stored in the request context for handlers.
func RequireAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			apierrors.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		username, err := auth.ParseToken(tokenString, jwtSecret)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				apierrors.Unauthorized(c, "Token has expired")
			} else {
				apierrors.Unauthorized(c, "Could not validate credentials")
			}
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().
			Where("username = ?", username).
			First(&user).Error; err != nil {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		if !user.IsActive {
			apierrors.BadRequest(c, "Inactive user")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}
