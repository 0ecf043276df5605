package transfer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
)

func RegisterRoutes(rg *gin.RouterGroup, table *rmiddleware.Table, svc *Service) {
	tc := NewTransferController(svc)
	transfers := rg.Group("/transfers")
	{
		table.Handle(transfers, http.MethodPost, "", rmiddleware.Need(models.RoleClubManager, models.PermWrite), tc.CreateTransfer)
		transfers.GET("", tc.ListTransfers)
		transfers.GET("/:id", tc.GetTransfer)
		table.Handle(transfers, http.MethodPatch, "/:id", rmiddleware.Need(models.RoleClubManager, models.PermUpdate), tc.UpdateTransfer)
		table.Handle(transfers, http.MethodPatch, "/:id/approve", rmiddleware.Need(models.RoleAdmin, models.PermUpdate), tc.ApproveTransfer)
		table.Handle(transfers, http.MethodPatch, "/:id/reject", rmiddleware.Need(models.RoleAdmin, models.PermUpdate), tc.RejectTransfer)
	}
}
