package models

import "time"

// Role names.
const (
	RoleAdmin       = "ADMIN"
	RoleClubManager = "CLUB_MANAGER"
	RoleOrganizer   = "ORGANIZER"
	RoleReferee     = "REFEREE"
	RoleUser        = "USER"
)

// Permission names.
const (
	PermRead   = "READ"
	PermWrite  = "WRITE"
	PermUpdate = "UPDATE"
	PermDelete = "DELETE"
)

type Permission struct {
	Base
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

type Role struct {
	Base
	Name        string       `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions"`
}

// PermissionNames flattens the role's permission set.
func (r Role) PermissionNames() []string {
	names := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		names = append(names, p.Name)
	}
	return names
}

type User struct {
	Base
	Username     string     `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"not null" json:"-"`
	RoleID       uint       `gorm:"not null;index" json:"role_id"`
	Role         Role       `json:"role"`
	ResetToken   *string    `gorm:"size:128" json:"-"`
	ResetExpires *time.Time `json:"-"`
}
