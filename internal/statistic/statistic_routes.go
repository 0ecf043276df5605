package statistic

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service) {
	sc := NewStatisticController(svc)
	stats := rg.Group("/statistics")
	{
		table.Handle(stats, http.MethodPost, "", rmiddleware.Need(models.RoleReferee, models.PermWrite), sc.CreateStatistic)
		stats.GET("/:id", sc.GetStatistic)
		table.Handle(stats, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleReferee, models.PermUpdate), sc.UpdateStatistic)
		table.Handle(stats, http.MethodDelete, "/:id", rmiddleware.Need(models.RoleAdmin, models.PermDelete), sc.DeleteStatistic)
	}
}
