package permission

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service) {
	pc := NewPermissionController(svc)
	perms := rg.Group("/permissions")
	{
		table.Handle(perms, http.MethodPost, "", rmiddleware.Need(models.RoleAdmin, models.PermWrite), pc.CreatePermission)
		table.Handle(perms, http.MethodGet, "", rmiddleware.Need(models.RoleAdmin, models.PermRead), pc.ListPermissions)
		table.Handle(perms, http.MethodGet, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermRead), pc.GetPermission)
		table.Handle(perms, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermUpdate), pc.UpdatePermission)
		table.Handle(perms, http.MethodDelete, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermDelete), pc.DeletePermission)
	}
}
