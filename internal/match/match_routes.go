package match

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/statistic"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service, stats *statistic.Service) {
	mc := NewMatchController(svc, stats)
	matches := rg.Group("/matches")
	{
		table.Handle(matches, http.MethodPost, "", rmiddleware.Need(models.RoleOrganizer, models.PermWrite), mc.CreateMatch)
		matches.GET("", mc.ListMatches)
		matches.GET("/:id", mc.GetMatch)
		table.Handle(matches, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleOrganizer, models.PermUpdate), mc.UpdateMatch)

		// Match status updates
		table.Handle(matches, http.MethodPatch, "/:id/status", rmiddleware.Need(models.RoleReferee, models.PermUpdate), mc.ChangeMatchStatus)
		table.Handle(matches, http.MethodPatch, "/:id/cancellation-reason", rmiddleware.Need(models.RoleOrganizer, models.PermUpdate), mc.UpdateCancellationReason)

		matches.GET("/:id/statistics", mc.ListMatchStatistics)
		matches.GET("/:id/result", mc.GetMatchResult)
	}
}
