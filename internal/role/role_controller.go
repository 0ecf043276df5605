package role

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type RoleController struct {
	svc *Service
}

func NewRoleController(svc *Service) *RoleController {
	return &RoleController{svc: svc}
}

// CreateRole godoc
// @Summary Create a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param role body RoleRequest true "Role with its permission ids"
// @Success 201 {object} responses.SuccessResponse{data=models.Role}
// @Failure 404 {object} responses.ErrorResponse "Permission not found"
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /roles [post]
func (rc *RoleController) CreateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	r, err := rc.svc.Create(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Role created successfully", r)
}

// ListRoles godoc
// @Summary List roles with their permissions
// @Tags Roles
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]models.Role}
// @Security Bearer
// @Router /roles [get]
func (rc *RoleController) ListRoles(c *gin.Context) {
	roles, err := rc.svc.List(c.Request.Context())
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", roles)
}

// GetRole godoc
// @Summary Get a role
// @Tags Roles
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} responses.SuccessResponse{data=models.Role}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /roles/{id} [get]
func (rc *RoleController) GetRole(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	r, err := rc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", r)
}

// UpdateRole godoc
// @Summary Update a role
// @Description permission_ids, when present, replaces the whole permission set.
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path int true "Role ID"
// @Param role body UpdateRoleRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.Role}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /roles/{id} [patch]
func (rc *RoleController) UpdateRole(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	r, err := rc.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Role updated successfully", r)
}

// DeleteRole godoc
// @Summary Delete a role
// @Tags Roles
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 409 {object} responses.ErrorResponse "Still held by users"
// @Security Bearer
// @Router /roles/{id} [delete]
func (rc *RoleController) DeleteRole(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	if err := rc.svc.Delete(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Role deleted successfully", nil)
}
