package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

// RegisterAuthRoutes mounts /auth on both groups. public carries no
// authentication; limit throttles the credential endpoints.
func RegisterAuthRoutes(public, protected *gin.RouterGroup, table *rmiddleware.Table, svc *Service, limit gin.HandlerFunc) {
	ac := NewAuthController(svc)

	authPublic := public.Group("/auth")
	{
		authPublic.POST("/login", limit, ac.Login)
		authPublic.POST("/forgot-password", limit, ac.ForgotPassword)
		authPublic.POST("/reset-password", limit, ac.ResetPassword)
	}

	authProtected := protected.Group("/auth")
	{
		table.Handle(authProtected, http.MethodPost, "/register", rmiddleware.Need(models.RoleAdmin, models.PermWrite), ac.Register)
		authProtected.GET("/me", ac.GetProfile)
	}
}
