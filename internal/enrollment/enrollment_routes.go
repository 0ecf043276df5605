package enrollment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service) {
	ec := NewEnrollmentController(svc)
	enrollments := rg.Group("/enrollments")
	{
		table.Handle(enrollments, http.MethodPost, "", rmiddleware.Need(models.RoleClubManager, models.PermWrite), ec.CreateEnrollment)
		enrollments.GET("/:id", ec.GetEnrollment)
		table.Handle(enrollments, http.MethodPatch, "/:id/approve", rmiddleware.Need(models.RoleOrganizer, models.PermUpdate), ec.ApproveEnrollment)
		table.Handle(enrollments, http.MethodPatch, "/:id/reject", rmiddleware.Need(models.RoleOrganizer, models.PermUpdate), ec.RejectEnrollment)
	}
}
