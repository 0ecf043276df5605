package auth

import (
	"time"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@clubhub.local"`
	Password string `json:"password" binding:"required" example:"admin12345"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,notblank,min=3,max=100" example:"jdoe"`
	Email    string `json:"email" binding:"required,email" example:"jdoe@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	RoleID   *uint  `json:"role_id,omitempty" example:"2"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"jdoe@example.com"`
}

// ResetPasswordRequest is validated by the service so that missing fields
// are reported in the result body instead of a 400.
type ResetPasswordRequest struct {
	Email       string `json:"email" example:"jdoe@example.com"`
	Token       string `json:"token" example:"9f2c..."`
	NewPassword string `json:"new_password" example:"newpassword123"`
}

type ResetResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type UserResponse struct {
	ID          uint         `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	Role        RoleResponse `json:"role"`
	Permissions []string     `json:"permissions"`
	CreatedAt   time.Time    `json:"created_at"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FilterUserRecord(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        RoleResponse{ID: u.Role.ID, Name: u.Role.Name},
		Permissions: u.Role.PermissionNames(),
		CreatedAt:   u.CreatedAt,
	}
}
