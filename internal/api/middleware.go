package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/auth"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/user"
)

// RequireAdmin ensures the authenticated staff account has admin privileges.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
