package result

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service) {
	rc := NewResultController(svc)
	results := rg.Group("/results")
	{
		table.Handle(results, http.MethodPost, "", rmiddleware.Need(models.RoleReferee, models.PermWrite), rc.CreateResult)
		results.GET("", rc.ListResults)
		results.GET("/:id", rc.GetResult)
		table.Handle(results, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleReferee, models.PermUpdate), rc.UpdateResult)
		table.Handle(results, http.MethodDelete, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermDelete), rc.DeleteResult)
	}
}
