package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manivarun57/support-portal/response"
)

const userIDKey = "userID"

// Identity resolves the requesting user from the trusted X-User-Id header,
// falling back to the configured default so the API can run without an
// upstream auth service.
func Identity(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-Id")
		if userID == "" {
			userID = defaultUserID
		}
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				response.ErrorResponse{Error: "Missing X-User-Id header"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the user id set by Identity.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
