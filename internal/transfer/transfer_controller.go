package transfer

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type TransferController struct {
	svc *Service
}

func NewTransferController(svc *Service) *TransferController {
	return &TransferController{svc: svc}
}

// CreateTransfer godoc
// @Summary Register a transfer between clubs
// @Tags Transfers
// @Accept json
// @Produce json
// @Param transfer body CreateTransferRequest true "Transfer"
// @Success 201 {object} responses.SuccessResponse{data=models.Transfer}
// @Failure 400 {object} responses.ErrorResponse "Origin equals destination"
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Pending transfer exists or athlete not a member"
// @Security Bearer
// @Router /transfers [post]
func (tc *TransferController) CreateTransfer(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	t, err := tc.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Transfer registered successfully", t)
}

// ListTransfers godoc
// @Summary List transfers, newest first
// @Tags Transfers
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Transfer}
// @Security Bearer
// @Router /transfers [get]
func (tc *TransferController) ListTransfers(c *gin.Context) {
	page, limit := responses.ParsePage(c)
	transfers, total, err := tc.svc.List(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", transfers, total, page, limit)
}

// GetTransfer godoc
// @Summary Get a transfer
// @Tags Transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Transfer}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /transfers/{id} [get]
func (tc *TransferController) GetTransfer(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	t, err := tc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", t)
}

// UpdateTransfer godoc
// @Summary Change a pending transfer
// @Tags Transfers
// @Accept json
// @Produce json
// @Param id path int true "Transfer ID"
// @Param transfer body UpdateTransferRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.Transfer}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Transfer already decided"
// @Security Bearer
// @Router /transfers/{id} [patch]
func (tc *TransferController) UpdateTransfer(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	t, err := tc.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Transfer updated successfully", t)
}

// ApproveTransfer godoc
// @Summary Approve a pending transfer
// @Description Closes the origin membership and opens one at the destination club.
// @Tags Transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Transfer}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Transition not permitted"
// @Security Bearer
// @Router /transfers/{id}/approve [patch]
func (tc *TransferController) ApproveTransfer(c *gin.Context) {
	tc.decide(c, tc.svc.Approve, "Transfer approved successfully")
}

// RejectTransfer godoc
// @Summary Reject a pending transfer
// @Tags Transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Transfer}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Transition not permitted"
// @Security Bearer
// @Router /transfers/{id}/reject [patch]
func (tc *TransferController) RejectTransfer(c *gin.Context) {
	tc.decide(c, tc.svc.Reject, "Transfer rejected successfully")
}

func (tc *TransferController) decide(c *gin.Context, fn func(ctx context.Context, userID, id uint) (*models.Transfer, error), msg string) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	t, err := fn(c.Request.Context(), userID, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, msg, t)
}
