package event

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type EventController struct {
	svc *Service
}

func NewEventController(svc *Service) *EventController {
	return &EventController{svc: svc}
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event"
// @Success 201 {object} responses.SuccessResponse{data=models.Event}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse "Organizer not found"
// @Failure 409 {object} responses.ErrorResponse "Venue already booked"
// @Security Bearer
// @Router /events [post]
func (ec *EventController) CreateEvent(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	e, err := ec.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Event created successfully", e)
}

// ListEvents godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param type query string false "tournament, friendly, qualifier or championship"
// @Param status query string false "planned, in_progress, finished or cancelled"
// @Param include_cancelled query bool false "Include cancelled events"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Event}
// @Security Bearer
// @Router /events [get]
func (ec *EventController) ListEvents(c *gin.Context) {
	page, limit := responses.ParsePage(c)
	f := Filter{Type: c.Query("type"), Status: c.Query("status")}
	f.IncludeCancelled, _ = strconv.ParseBool(c.Query("include_cancelled"))
	events, total, err := ec.svc.List(c.Request.Context(), f, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", events, total, page, limit)
}

// ListActiveEvents godoc
// @Summary Events in progress
// @Tags Events
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]models.Event}
// @Security Bearer
// @Router /events/active [get]
func (ec *EventController) ListActiveEvents(c *gin.Context) {
	events, err := ec.svc.Active(c.Request.Context())
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", events)
}

// ListUpcomingEvents godoc
// @Summary The next five planned events
// @Tags Events
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]models.Event}
// @Security Bearer
// @Router /events/upcoming [get]
func (ec *EventController) ListUpcomingEvents(c *gin.Context) {
	events, err := ec.svc.Upcoming(c.Request.Context())
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", events)
}

// GetEvent godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Event}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /events/{id} [get]
func (ec *EventController) GetEvent(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	e, err := ec.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", e)
}

// UpdateEvent godoc
// @Summary Update a planned event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.Event}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /events/{id} [patch]
func (ec *EventController) UpdateEvent(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	e, err := ec.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event updated successfully", e)
}

// CancelEvent godoc
// @Summary Cancel an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Transition not permitted"
// @Security Bearer
// @Router /events/{id} [delete]
func (ec *EventController) CancelEvent(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	if err := ec.svc.Cancel(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event cancelled successfully", nil)
}

// ChangeEventStatus godoc
// @Summary Move an event through its lifecycle
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param status body StatusRequest true "Target status"
// @Success 200 {object} responses.SuccessResponse{data=models.Event}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Transition not permitted"
// @Security Bearer
// @Router /events/{id}/status [patch]
func (ec *EventController) ChangeEventStatus(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	e, err := ec.svc.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event status updated", e)
}

// ListEventEnrollments godoc
// @Summary Enrollments of an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} responses.SuccessResponse{data=[]models.Enrollment}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /events/{id}/enrollments [get]
func (ec *EventController) ListEventEnrollments(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	enrollments, err := ec.svc.Enrollments(c.Request.Context(), id, c.Query("status"))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", enrollments)
}

// ListEventMatches godoc
// @Summary Matches of an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.Match}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /events/{id}/matches [get]
func (ec *EventController) ListEventMatches(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	matches, err := ec.svc.Matches(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", matches)
}

// ListEventResults godoc
// @Summary Results of an event's matches
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.Result}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /events/{id}/results [get]
func (ec *EventController) ListEventResults(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	results, err := ec.svc.Results(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", results)
}
