package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type ContactController struct {
	svc *Service
}

func NewContactController(svc *Service) *ContactController {
	return &ContactController{svc: svc}
}

// CreateContact godoc
// @Summary Add a contact to an athlete
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact body CreateContactRequest true "Contact"
// @Success 201 {object} responses.SuccessResponse{data=models.Contact}
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Failure 409 {object} responses.ErrorResponse "Emergency contact already set"
// @Security Bearer
// @Router /contacts [post]
func (cc *ContactController) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	contact, err := cc.svc.Create(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Contact created successfully", contact)
}

// GetContact godoc
// @Summary Get a contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Contact}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /contacts/{id} [get]
func (cc *ContactController) GetContact(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	contact, err := cc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", contact)
}

// UpdateContact godoc
// @Summary Update a contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param contact body UpdateContactRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.Contact}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /contacts/{id} [patch]
func (cc *ContactController) UpdateContact(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	contact, err := cc.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Contact updated successfully", contact)
}

// DeleteContact godoc
// @Summary Delete a contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /contacts/{id} [delete]
func (cc *ContactController) DeleteContact(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	if err := cc.svc.Delete(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Contact deleted successfully", nil)
}
