package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
	"github.com/DhavalSuthar-24/clubhub/pkg/token"
)

// AuthMiddleware verifies the bearer token and stores the caller's principal.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		scheme, raw, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(raw) == "" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(strings.TrimSpace(raw), jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		var count int64
		if err := db.WithContext(c.Request.Context()).Table("users").Where("id = ?", claims.UserID).Count(&count).Error; err != nil {
			logging.FromContext(c.Request.Context()).Error("user lookup failed", "user_id", claims.UserID, "error", err)
			responses.Unauthorized(c, "User not found")
			return
		}
		if count == 0 {
			responses.Unauthorized(c, "User not found")
			return
		}

		common.SetPrincipal(c, &common.Principal{
			UserID:      claims.UserID,
			Username:    claims.Username,
			Email:       claims.Email,
			RoleID:      claims.Role.ID,
			Role:        claims.Role.Name,
			Permissions: claims.Permissions,
		})
		c.Next()
	}
}
