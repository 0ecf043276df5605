package enrollment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type EnrollmentController struct {
	svc *Service
}

func NewEnrollmentController(svc *Service) *EnrollmentController {
	return &EnrollmentController{svc: svc}
}

// CreateEnrollment godoc
// @Summary Enroll a club in an event
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param enrollment body CreateEnrollmentRequest true "Event and club"
// @Success 201 {object} responses.SuccessResponse{data=models.Enrollment}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Already enrolled or event not planned"
// @Security Bearer
// @Router /enrollments [post]
func (ec *EnrollmentController) CreateEnrollment(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	var req CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	e, err := ec.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Enrollment registered successfully", e)
}

// GetEnrollment godoc
// @Summary Get an enrollment
// @Tags Enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Enrollment}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /enrollments/{id} [get]
func (ec *EnrollmentController) GetEnrollment(c *gin.Context) {
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

// ApproveEnrollment godoc
// @Summary Approve an enrollment
// @Tags Enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Enrollment}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Transition not permitted"
// @Security Bearer
// @Router /enrollments/{id}/approve [patch]
func (ec *EnrollmentController) ApproveEnrollment(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	e, err := ec.svc.Approve(c.Request.Context(), userID, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Enrollment approved", e)
}

// RejectEnrollment godoc
// @Summary Reject an enrollment
// @Tags Enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Enrollment}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Transition not permitted"
// @Security Bearer
// @Router /enrollments/{id}/reject [patch]
func (ec *EnrollmentController) RejectEnrollment(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	e, err := ec.svc.Reject(c.Request.Context(), userID, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Enrollment rejected", e)
}
