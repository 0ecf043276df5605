package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

type AuthController struct {
	svc *Service
}

func NewAuthController(svc *Service) *AuthController {
	return &AuthController{svc: svc}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user account. Only administrators may register users; role defaults to USER.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body      RegisterRequest  true  "User registration details"
// @Success      201   {object}  responses.SuccessResponse{data=UserResponse}
// @Failure      400   {object}  responses.ErrorResponse
// @Failure      404   {object}  responses.ErrorResponse "Role not found"
// @Failure      409   {object}  responses.ErrorResponse "Email or username already in use"
// @Security     Bearer
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	u, err := ac.svc.Register(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", FilterUserRecord(u))
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for a bearer token carrying role and permissions.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  responses.SuccessResponse{data=AuthResponse}
// @Failure      400          {object}  responses.ErrorResponse
// @Failure      401          {object}  responses.ErrorResponse "Invalid credentials"
// @Failure      429          {object}  responses.ErrorResponse
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	res, err := ac.svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Login successful", res)
}

// ForgotPassword godoc
// @Summary      Request a password reset
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      ForgotPasswordRequest  true  "Account email"
// @Success      200      {object}  responses.SuccessResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Failure      429      {object}  responses.ErrorResponse
// @Router       /auth/forgot-password [post]
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendBindError(c, err)
		return
	}
	if err := ac.svc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Password reset link sent", nil)
}

// ResetPassword godoc
// @Summary      Reset a password with a reset token
// @Description  Always answers 200; success is reported in the body.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      ResetPasswordRequest  true  "Email, token and new password"
// @Success      200      {object}  ResetResult
// @Failure      429      {object}  responses.ErrorResponse
// @Router       /auth/reset-password [post]
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, ResetResult{Message: "malformed request"})
		return
	}
	res, err := ac.svc.ResetPassword(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetProfile godoc
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=UserResponse}
// @Failure      401  {object}  responses.ErrorResponse
// @Security     Bearer
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	u, err := ac.svc.Me(c.Request.Context(), userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", FilterUserRecord(u))
}
