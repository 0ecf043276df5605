// internal/models/base.go
package models

import "time"

// Base is embedded by every persisted entity. Rows are never soft-deleted by
// gorm; entities with a lifecycle carry their own status column instead.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordStatus is the active/inactive lifecycle of clubs, athletes and memberships.
type RecordStatus string

const (
	StatusActive   RecordStatus = "active"
	StatusInactive RecordStatus = "inactive"
)

func (s RecordStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// ApprovalStatus is shared by transfers and enrollments.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)
