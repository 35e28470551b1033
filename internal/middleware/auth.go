package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jhc-clinics/hms-api/internal/models"
	"github.com/jhc-clinics/hms-api/internal/token"
)

const (
	ContextAdminID = "adminID"
	ContextAdmin   = "admin"
)

// AdminOnly gates admin operations: it verifies the bearer token and loads
// the hospital actor behind it. A valid token whose actor no longer exists
// is forbidden, not unauthorized.
func AdminOnly(db *gorm.DB, tokens *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized token not found",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized token not found",
			})
			return
		}

		adminID, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid token",
			})
			return
		}

		var admin models.Hospital
		if err := db.First(&admin, adminID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "forbidden: you don't have rights to perform this action...",
			})
			return
		}

		c.Set(ContextAdminID, admin.ID)
		c.Set(ContextAdmin, &admin)

		c.Next()
	}
}
