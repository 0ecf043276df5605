package permission

type PermissionRequest struct {
	Name string `json:"name" binding:"required,notblank,max=50" example:"READ"`
}
