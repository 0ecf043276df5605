package athlete

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/internal/contact"
	"github.com/DhavalSuthar-24/clubhub/internal/statistic"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type AthleteController struct {
	svc      *Service
	contacts *contact.Service
	stats    *statistic.Service
}

func NewAthleteController(svc *Service, contacts *contact.Service, stats *statistic.Service) *AthleteController {
	return &AthleteController{svc: svc, contacts: contacts, stats: stats}
}

// CreateAthlete godoc
// @Summary Register an athlete
// @Description Accepts JSON, or multipart form data with optional files photo, identity_document, birth_certificate, affiliation, health_certificate and guardian_permit.
// @Tags Athletes
// @Accept json,mpfd
// @Produce json
// @Param athlete body CreateAthleteRequest true "Athlete"
// @Success 201 {object} responses.SuccessResponse{data=models.Athlete}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Document number in use"
// @Failure 502 {object} responses.ErrorResponse "File upload failed"
// @Security Bearer
// @Router /athletes [post]
func (ac *AthleteController) CreateAthlete(c *gin.Context) {
	var req CreateAthleteRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	files, closeFiles, err := common.FormFiles(c, FileFields()...)
	if err != nil {
		responses.BadRequest(c, "Invalid file upload")
		return
	}
	defer closeFiles()

	a, err := ac.svc.Create(c.Request.Context(), req, files)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Athlete created successfully", a)
}

// ListAthletes godoc
// @Summary List athletes
// @Tags Athletes
// @Produce json
// @Param club_id query int false "Active members of this club"
// @Param gender query string false "male or female"
// @Param status query string false "active (default) or inactive"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Athlete}
// @Security Bearer
// @Router /athletes [get]
func (ac *AthleteController) ListAthletes(c *gin.Context) {
	f := Filter{Gender: c.Query("gender"), Status: c.Query("status")}
	if v := c.Query("club_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			responses.BadRequest(c, "Invalid club_id")
			return
		}
		clubID := uint(id)
		f.ClubID = &clubID
	}
	page, limit := responses.ParsePage(c)
	athletes, total, err := ac.svc.List(c.Request.Context(), f, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", athletes, total, page, limit)
}

// GetAthlete godoc
// @Summary Get an athlete
// @Tags Athletes
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Athlete}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /athletes/{id} [get]
func (ac *AthleteController) GetAthlete(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	a, err := ac.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", a)
}

// UpdateAthlete godoc
// @Summary Update an athlete
// @Tags Athletes
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Athlete ID"
// @Param athlete body UpdateAthleteRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.Athlete}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Security Bearer
// @Router /athletes/{id} [patch]
func (ac *AthleteController) UpdateAthlete(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateAthleteRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	files, closeFiles, err := common.FormFiles(c, FileFields()...)
	if err != nil {
		responses.BadRequest(c, "Invalid file upload")
		return
	}
	defer closeFiles()

	a, err := ac.svc.Update(c.Request.Context(), id, req, files)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athlete updated successfully", a)
}

// DeleteAthlete godoc
// @Summary Deactivate an athlete
// @Tags Athletes
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /athletes/{id} [delete]
func (ac *AthleteController) DeleteAthlete(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	if err := ac.svc.Delete(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athlete deleted successfully", nil)
}

// ListAthleteClubs godoc
// @Summary Clubs the athlete is an active member of
// @Tags Athletes
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.ClubAthlete}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /athletes/{id}/clubs [get]
func (ac *AthleteController) ListAthleteClubs(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	clubs, err := ac.svc.Clubs(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", clubs)
}

// ListAthleteTransfers godoc
// @Summary Transfers of an athlete, newest first
// @Tags Athletes
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.Transfer}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /athletes/{id}/transfers [get]
func (ac *AthleteController) ListAthleteTransfers(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	transfers, err := ac.svc.Transfers(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", transfers)
}

// ListAthleteContacts godoc
// @Summary Contacts of an athlete, emergency contact first
// @Tags Athletes
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.Contact}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /athletes/{id}/contacts [get]
func (ac *AthleteController) ListAthleteContacts(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	contacts, err := ac.contacts.ForAthlete(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", contacts)
}

// GetEmergencyContact godoc
// @Summary The athlete's emergency contact
// @Tags Athletes
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Contact}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /athletes/{id}/emergency-contact [get]
func (ac *AthleteController) GetEmergencyContact(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	em, err := ac.contacts.EmergencyFor(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", em)
}

// ListAthleteStatistics godoc
// @Summary Per-match statistics of an athlete
// @Tags Athletes
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.MatchStatistic}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /athletes/{id}/statistics [get]
func (ac *AthleteController) ListAthleteStatistics(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	stats, err := ac.stats.ForAthlete(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", stats)
}

// GetStatisticsSummary godoc
// @Summary Summed statistics of an athlete
// @Tags Athletes
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse{data=statistic.Summary}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /athletes/{id}/statistics/summary [get]
func (ac *AthleteController) GetStatisticsSummary(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	sum, err := ac.stats.Summarize(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", sum)
}
