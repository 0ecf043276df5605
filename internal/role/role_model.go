package role

type RoleRequest struct {
	Name          string `json:"name" binding:"required,notblank,max=50" example:"CLUB_MANAGER"`
	PermissionIDs []uint `json:"permission_ids" binding:"omitempty,dive,gt=0" example:"1,2"`
}

type UpdateRoleRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,notblank,max=50"`
	PermissionIDs *[]uint `json:"permission_ids,omitempty"`
}
