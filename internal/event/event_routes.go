package event

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service) {
	ec := NewEventController(svc)
	events := rg.Group("/events")
	{
		table.Handle(events, http.MethodPost, "", rmiddleware.Need(models.RoleOrganizer, models.PermWrite), ec.CreateEvent)
		events.GET("", ec.ListEvents)
		events.GET("/active", ec.ListActiveEvents)
		events.GET("/upcoming", ec.ListUpcomingEvents)
		events.GET("/:id", ec.GetEvent)
		table.Handle(events, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleOrganizer, models.PermUpdate), ec.UpdateEvent)
		table.Handle(events, http.MethodDelete, "/:id", rmiddleware.Need(models.RoleOrganizer, models.PermDelete), ec.CancelEvent)
		table.Handle(events, http.MethodPatch, "/:id/status", rmiddleware.Need(models.RoleOrganizer, models.PermUpdate), ec.ChangeEventStatus)

		events.GET("/:id/enrollments", ec.ListEventEnrollments)
		events.GET("/:id/matches", ec.ListEventMatches)
		events.GET("/:id/results", ec.ListEventResults)
	}
}
