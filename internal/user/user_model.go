package user

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,notblank,min=3,max=100" example:"manager1"`
	Email    string `json:"email" binding:"required,email" example:"manager1@clubhub.local"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	RoleID   uint   `json:"role_id" binding:"required" example:"2"`
}

type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,notblank,min=3,max=100"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	RoleID   *uint   `json:"role_id,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}
