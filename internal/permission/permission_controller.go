package permission

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type PermissionController struct {
	svc *Service
}

func NewPermissionController(svc *Service) *PermissionController {
	return &PermissionController{svc: svc}
}

// CreatePermission godoc
// @Summary Create a permission
// @Tags Permissions
// @Accept json
// @Produce json
// @Param permission body PermissionRequest true "Permission"
// @Success 201 {object} responses.SuccessResponse{data=models.Permission}
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /permissions [post]
func (pc *PermissionController) CreatePermission(c *gin.Context) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	p, err := pc.svc.Create(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Permission created successfully", p)
}

// ListPermissions godoc
// @Summary List permissions
// @Tags Permissions
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]models.Permission}
// @Security Bearer
// @Router /permissions [get]
func (pc *PermissionController) ListPermissions(c *gin.Context) {
	perms, err := pc.svc.List(c.Request.Context())
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", perms)
}

// GetPermission godoc
// @Summary Get a permission
// @Tags Permissions
// @Produce json
// @Param id path int true "Permission ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Permission}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /permissions/{id} [get]
func (pc *PermissionController) GetPermission(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	p, err := pc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", p)
}

// UpdatePermission godoc
// @Summary Rename a permission
// @Tags Permissions
// @Accept json
// @Produce json
// @Param id path int true "Permission ID"
// @Param permission body PermissionRequest true "Permission"
// @Success 200 {object} responses.SuccessResponse{data=models.Permission}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /permissions/{id} [patch]
func (pc *PermissionController) UpdatePermission(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	p, err := pc.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Permission updated successfully", p)
}

// DeletePermission godoc
// @Summary Delete a permission
// @Tags Permissions
// @Produce json
// @Param id path int true "Permission ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 409 {object} responses.ErrorResponse "Still granted to a role"
// @Security Bearer
// @Router /permissions/{id} [delete]
func (pc *PermissionController) DeletePermission(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	if err := pc.svc.Delete(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Permission deleted successfully", nil)
}
