package result

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type ResultController struct {
	svc *Service
}

func NewResultController(svc *Service) *ResultController {
	return &ResultController{svc: svc}
}

// CreateResult godoc
// @Summary Register the result of a finished match
// @Tags Results
// @Accept json
// @Produce json
// @Param result body CreateResultRequest true "Score"
// @Success 201 {object} responses.SuccessResponse{data=models.Result}
// @Failure 400 {object} responses.ErrorResponse "Negative sets or points"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match not finished or result already registered"
// @Security Bearer
// @Router /results [post]
func (rc *ResultController) CreateResult(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	var req CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	res, err := rc.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Result registered successfully", res)
}

// ListResults godoc
// @Summary List results
// @Tags Results
// @Produce json
// @Param match_id query int false "Only the result of this match"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Result}
// @Security Bearer
// @Router /results [get]
func (rc *ResultController) ListResults(c *gin.Context) {
	page, limit := responses.ParsePage(c)
	var f Filter
	if raw := c.Query("match_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			responses.BadRequest(c, "match_id must be a positive integer")
			return
		}
		matchID := uint(id)
		f.MatchID = &matchID
	}
	results, total, err := rc.svc.List(c.Request.Context(), f, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", results, total, page, limit)
}

// GetResult godoc
// @Summary Get a result
// @Tags Results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Result}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /results/{id} [get]
func (rc *ResultController) GetResult(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	res, err := rc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", res)
}

// UpdateResult godoc
// @Summary Correct a result
// @Tags Results
// @Accept json
// @Produce json
// @Param id path int true "Result ID"
// @Param result body UpdateResultRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.Result}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /results/{id} [patch]
func (rc *ResultController) UpdateResult(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	res, err := rc.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Result updated successfully", res)
}

// DeleteResult godoc
// @Summary Delete a result
// @Tags Results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /results/{id} [delete]
func (rc *ResultController) DeleteResult(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	if err := rc.svc.Delete(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Result deleted successfully", nil)
}
