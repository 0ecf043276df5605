package match

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/statistic"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type MatchController struct {
	svc   *Service
	stats *statistic.Service
}

func NewMatchController(svc *Service, stats *statistic.Service) *MatchController {
	return &MatchController{svc: svc, stats: stats}
}

// CreateMatch godoc
// @Summary Schedule a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match"
// @Success 201 {object} responses.SuccessResponse{data=models.Match}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse "Event, club or referee not found"
// @Failure 409 {object} responses.ErrorResponse "Same clubs, missing enrollment or slot taken"
// @Security Bearer
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	m, err := mc.svc.Create(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match scheduled successfully", m)
}

// ListMatches godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param from query string false "Earliest scheduled time (RFC3339)"
// @Param to query string false "Latest scheduled time (RFC3339)"
// @Param status query string false "scheduled, in_progress, finished or cancelled"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Match}
// @Failure 400 {object} responses.ErrorResponse
// @Security Bearer
// @Router /matches [get]
func (mc *MatchController) ListMatches(c *gin.Context) {
	page, limit := responses.ParsePage(c)
	f := Filter{Status: c.Query("status")}
	for param, dst := range map[string]**time.Time{"from": &f.From, "to": &f.To} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		t, err := ParseTime(param, raw)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		*dst = &t
	}
	matches, total, err := mc.svc.List(c.Request.Context(), f, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", matches, total, page, limit)
}

// GetMatch godoc
// @Summary Get a match with its result
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Match}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatch(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	m, err := mc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", m)
}

// UpdateMatch godoc
// @Summary Update a scheduled match
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.Match}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /matches/{id} [patch]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	m, err := mc.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", m)
}

// ChangeMatchStatus godoc
// @Summary Move a match through its lifecycle
// @Description Cancelling requires a non-empty reason.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param status body StatusRequest true "Target status"
// @Success 200 {object} responses.SuccessResponse{data=models.Match}
// @Failure 400 {object} responses.ErrorResponse "Missing cancellation reason"
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Transition not permitted"
// @Security Bearer
// @Router /matches/{id}/status [patch]
func (mc *MatchController) ChangeMatchStatus(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	m, err := mc.svc.ChangeStatus(c.Request.Context(), id, req.Status, req.Reason)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match status updated", m)
}

// UpdateCancellationReason godoc
// @Summary Reword the reason of a cancelled match
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param reason body CancellationReasonRequest true "Reason"
// @Success 200 {object} responses.SuccessResponse{data=models.Match}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Match not cancelled"
// @Security Bearer
// @Router /matches/{id}/cancellation-reason [patch]
func (mc *MatchController) UpdateCancellationReason(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req CancellationReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	m, err := mc.svc.UpdateCancellationReason(c.Request.Context(), id, req.Reason)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Cancellation reason updated", m)
}

// ListMatchStatistics godoc
// @Summary Athlete statistics recorded for a match
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.MatchStatistic}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /matches/{id}/statistics [get]
func (mc *MatchController) ListMatchStatistics(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	stats, err := mc.stats.ForMatch(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", stats)
}

// GetMatchResult godoc
// @Summary Result of a match
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Result}
// @Failure 404 {object} responses.ErrorResponse "Match not found or no result yet"
// @Security Bearer
// @Router /matches/{id}/result [get]
func (mc *MatchController) GetMatchResult(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	r, err := mc.svc.Result(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", r)
}
