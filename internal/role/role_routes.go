package role

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service) {
	rc := NewRoleController(svc)
	roles := rg.Group("/roles")
	{
		table.Handle(roles, http.MethodPost, "", rmiddleware.Need(models.RoleAdmin, models.PermWrite), rc.CreateRole)
		table.Handle(roles, http.MethodGet, "", rmiddleware.Need(models.RoleAdmin, models.PermRead), rc.ListRoles)
		table.Handle(roles, http.MethodGet, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermRead), rc.GetRole)
		table.Handle(roles, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermUpdate), rc.UpdateRole)
		table.Handle(roles, http.MethodDelete, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermDelete), rc.DeleteRole)
	}
}
