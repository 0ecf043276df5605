package athlete

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/contact"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/statistic"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service, contacts *contact.Service, stats *statistic.Service) {
	ac := NewAthleteController(svc, contacts, stats)
	athletes := rg.Group("/athletes")
	{
		table.Handle(athletes, http.MethodPost, "", rmiddleware.Need(models.RoleClubManager, models.PermWrite), ac.CreateAthlete)
		athletes.GET("", ac.ListAthletes)
		athletes.GET("/:id", ac.GetAthlete)
		table.Handle(athletes, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleClubManager, models.PermUpdate), ac.UpdateAthlete)
		table.Handle(athletes, http.MethodDelete, "/:id", rmiddleware.Need(models.RoleClubManager, models.PermDelete), ac.DeleteAthlete)

		athletes.GET("/:id/clubs", ac.ListAthleteClubs)
		athletes.GET("/:id/transfers", ac.ListAthleteTransfers)
		athletes.GET("/:id/contacts", ac.ListAthleteContacts)
		athletes.GET("/:id/emergency-contact", ac.GetEmergencyContact)
		athletes.GET("/:id/statistics", ac.ListAthleteStatistics)
		athletes.GET("/:id/statistics/summary", ac.GetStatisticsSummary)
	}
}
