package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service) {
	uc := NewUserController(svc)
	users := rg.Group("/users")
	{
		table.Handle(users, http.MethodPost, "", rmiddleware.Need(models.RoleAdmin, models.PermWrite), uc.CreateUser)
		table.Handle(users, http.MethodGet, "", rmiddleware.Need(models.RoleAdmin, models.PermRead), uc.ListUsers)
		table.Handle(users, http.MethodGet, "/role/:roleId", rmiddleware.Need(models.RoleAdmin, models.PermRead), uc.ListUsersByRole)
		table.Handle(users, http.MethodGet, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermRead), uc.GetUser)
		table.Handle(users, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermUpdate), uc.UpdateUser)
		users.PATCH("/:id/password", uc.ChangePassword)
		table.Handle(users, http.MethodDelete, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermDelete), uc.DeleteUser)
	}
}
