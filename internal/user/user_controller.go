package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type UserController struct {
	svc *Service
}

func NewUserController(svc *Service) *UserController {
	return &UserController{svc: svc}
}

// CreateUser godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User"
// @Success 201 {object} responses.SuccessResponse{data=models.User}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse "Role not found"
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /users [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	u, err := uc.svc.Create(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User created successfully", u)
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.User}
// @Security Bearer
// @Router /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	page, limit := responses.ParsePage(c)
	users, total, err := uc.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", users, total, page, limit)
}

// ListUsersByRole godoc
// @Summary List users holding a role
// @Tags Users
// @Produce json
// @Param roleId path int true "Role ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} responses.PaginatedResponse{data=[]models.User}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /users/role/{roleId} [get]
func (uc *UserController) ListUsersByRole(c *gin.Context) {
	roleID, ok := responses.ParseID(c, "roleId")
	if !ok {
		return
	}
	page, limit := responses.ParsePage(c)
	users, total, err := uc.svc.ListByRole(c.Request.Context(), roleID, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", users, total, page, limit)
}

// GetUser godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=models.User}
// @Failure 404 {object} responses.ErrorResponse
// @Security Bearer
// @Router /users/{id} [get]
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	u, err := uc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", u)
}

// UpdateUser godoc
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UpdateUserRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=models.User}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /users/{id} [patch]
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	u, err := uc.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User updated successfully", u)
}

// ChangePassword godoc
// @Summary Change a user's password
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} responses.SuccessResponse
// @Failure 401 {object} responses.ErrorResponse "Current password is incorrect"
// @Failure 403 {object} responses.ErrorResponse
// @Security Bearer
// @Router /users/{id}/password [patch]
func (uc *UserController) ChangePassword(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	caller, err := common.GetPrincipal(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if err := uc.svc.ChangePassword(c.Request.Context(), caller, id, req); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Password changed successfully", nil)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Refused while the user is referenced by clubs, events, matches, transfers, enrollments or results.
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security Bearer
// @Router /users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := responses.ParseID(c, "id")
	if !ok {
		return
	}
	if err := uc.svc.Delete(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User deleted successfully", nil)
}
