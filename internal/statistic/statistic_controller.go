package statistic

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type StatisticController struct {
	svc *Service
}

func NewStatisticController(svc *Service) *StatisticController {
	return &StatisticController{svc: svc}
}

// CreateStatistic godoc
// @Summary Record an athlete's counters for a match
// @Tags Statistics
// @Accept json
// @Produce json
// @Param statistic body CreateStatisticRequest true "Counters"
// @Success 201 {object} responses.SuccessResponse{data=models.MatchStatistic}
// @Failure 400 {object} responses.ErrorResponse "Negative counter"
// @Failure 404 {object} responses.ErrorResponse "Match or athlete not found"
// @Failure 409 {object} responses.ErrorResponse "Already recorded"
// @Security Bearer
// @Router /statistics [post]
func (sc *StatisticController) CreateStatistic(c *gin.Context) {
	var req CreateStatisticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	stat, err := sc.svc.Create(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Statistic recorded successfully", stat)
}

// GetStatistic godoc
// @Summary Get a statistic row
// @Tags Statistics
// @Produce json
// @Param id path int true "Statistic ID"
// @Success 200 {object} responses.SuccessResponse{data=models.MatchStatistic}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /statistics/{id} [get]
func (sc *StatisticController) GetStatistic(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	stat, err := sc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", stat)
}

// UpdateStatistic godoc
// @Summary Update a statistic row
// @Tags Statistics
// @Accept json
// @Produce json
// @Param id path int true "Statistic ID"
// @Param statistic body UpdateStatisticRequest true "Counters to change"
// @Success 200 {object} responses.SuccessResponse{data=models.MatchStatistic}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /statistics/{id} [patch]
func (sc *StatisticController) UpdateStatistic(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateStatisticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	stat, err := sc.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Statistic updated successfully", stat)
}

// DeleteStatistic godoc
// @Summary Delete a statistic row
// @Tags Statistics
// @Produce json
// @Param id path int true "Statistic ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /statistics/{id} [delete]
func (sc *StatisticController) DeleteStatistic(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	if err := sc.svc.Delete(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Statistic deleted successfully", nil)
}
