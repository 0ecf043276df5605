package club

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type ClubController struct {
	svc *Service
}

func NewClubController(svc *Service) *ClubController {
	return &ClubController{svc: svc}
}

// CreateClub godoc
// @Summary Create a club
// @Description Accepts JSON, or multipart form data with an optional "logo" file.
// @Tags Clubs
// @Accept json,mpfd
// @Produce json
// @Param club body CreateClubRequest true "Club"
// @Param logo formData file false "Club logo"
// @Success 201 {object} responses.SuccessResponse{data=models.Club}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse "Responsible user not found"
// @Failure 409 {object} responses.ErrorResponse "Name in use"
// @Failure 502 {object} responses.ErrorResponse "Logo upload failed"
// @Security Bearer
// @Router /clubs [post]
func (cc *ClubController) CreateClub(c *gin.Context) {
	var req CreateClubRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	files, closeFiles, err := common.FormFiles(c, "logo")
	if err != nil {
		responses.BadRequest(c, "Invalid logo upload")
		return
	}
	defer closeFiles()

	club, err := cc.svc.Create(c.Request.Context(), req, files["logo"])
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Club created successfully", club)
}

// ListClubs godoc
// @Summary List clubs
// @Tags Clubs
// @Produce json
// @Param responsible_id query int false "Responsible user"
// @Param name query string false "Name contains (case-insensitive)"
// @Param include_inactive query bool false "Include inactive clubs"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.Club}
// @Security Bearer
// @Router /clubs [get]
func (cc *ClubController) ListClubs(c *gin.Context) {
	var f Filter
	if v := c.Query("responsible_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			responses.BadRequest(c, "Invalid responsible_id")
			return
		}
		rid := uint(id)
		f.ResponsibleID = &rid
	}
	f.Name = c.Query("name")
	f.IncludeInactive, _ = strconv.ParseBool(c.Query("include_inactive"))

	page, limit := responses.ParsePage(c)
	clubs, total, err := cc.svc.List(c.Request.Context(), f, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", clubs, total, page, limit)
}

// GetClub godoc
// @Summary Get a club
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Club}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /clubs/{id} [get]
func (cc *ClubController) GetClub(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	club, err := cc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", club)
}

// UpdateClub godoc
// @Summary Update a club
// @Tags Clubs
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Club ID"
// @Param club body UpdateClubRequest true "Fields to change"
// @Param logo formData file false "New logo"
// @Success 200 {object} responses.SuccessResponse{data=models.Club}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /clubs/{id} [patch]
func (cc *ClubController) UpdateClub(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateClubRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	files, closeFiles, err := common.FormFiles(c, "logo")
	if err != nil {
		responses.BadRequest(c, "Invalid logo upload")
		return
	}
	defer closeFiles()

	club, err := cc.svc.Update(c.Request.Context(), id, req, files["logo"])
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club updated successfully", club)
}

// DeleteClub godoc
// @Summary Deactivate a club
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /clubs/{id} [delete]
func (cc *ClubController) DeleteClub(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	if err := cc.svc.Delete(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club deleted successfully", nil)
}

// AssignAthlete godoc
// @Summary Add an athlete to a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param membership body AssignAthleteRequest true "Athlete and join date"
// @Success 201 {object} responses.SuccessResponse{data=models.ClubAthlete}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Already an active member"
// @Security Bearer
// @Router /clubs/{id}/athletes [post]
func (cc *ClubController) AssignAthlete(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req AssignAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	ca, err := cc.svc.AssignAthlete(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Athlete assigned successfully", ca)
}

// ListClubAthletes godoc
// @Summary Active members of a club
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.ClubAthlete}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /clubs/{id}/athletes [get]
func (cc *ClubController) ListClubAthletes(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	members, err := cc.svc.Athletes(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", members)
}

// ListClubTransfers godoc
// @Summary Transfers into and out of a club
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.Transfer}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /clubs/{id}/transfers [get]
func (cc *ClubController) ListClubTransfers(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	transfers, err := cc.svc.Transfers(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", transfers)
}

// ListClubMatches godoc
// @Summary Matches a club plays in
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=[]models.Match}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /clubs/{id}/matches [get]
func (cc *ClubController) ListClubMatches(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	matches, err := cc.svc.Matches(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", matches)
}
