package club

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service) {
	cc := NewClubController(svc)
	clubs := rg.Group("/clubs")
	{
		table.Handle(clubs, http.MethodPost, "", rmiddleware.Need(models.RoleClubManager, models.PermWrite), cc.CreateClub)
		clubs.GET("", cc.ListClubs)
		clubs.GET("/:id", cc.GetClub)
		table.Handle(clubs, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleClubManager, models.PermUpdate), cc.UpdateClub)
		table.Handle(clubs, http.MethodDelete, "/:id", rmiddleware.Need(models.RoleClubManager, models.PermDelete), cc.DeleteClub)

		table.Handle(clubs, http.MethodPost, "/:id/athletes", rmiddleware.Need(models.RoleClubManager, models.PermWrite), cc.AssignAthlete)
		clubs.GET("/:id/athletes", cc.ListClubAthletes)
		clubs.GET("/:id/transfers", cc.ListClubTransfers)
		clubs.GET("/:id/matches", cc.ListClubMatches)
	}
}
