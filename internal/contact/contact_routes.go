package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service) {
	cc := NewContactController(svc)
	contacts := rg.Group("/contacts")
	{
		table.Handle(contacts, http.MethodPost, "", rmiddleware.Need(models.RoleClubManager, models.PermWrite), cc.CreateContact)
		contacts.GET("/:id", cc.GetContact)
		table.Handle(contacts, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleClubManager, models.PermUpdate), cc.UpdateContact)
		table.Handle(contacts, http.MethodDelete, "/:id", rmiddleware.Need(models.RoleClubManager, models.PermDelete), cc.DeleteContact)
	}
}
