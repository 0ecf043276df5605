package models

import "time"

type Transfer struct {
	Base
	AthleteID      uint           `gorm:"not null;index" json:"athlete_id"`
	Athlete        *Athlete       `json:"athlete,omitempty"`
	FromClubID     uint           `gorm:"not null;index" json:"from_club_id"`
	FromClub       *Club          `gorm:"foreignKey:FromClubID" json:"from_club,omitempty"`
	ToClubID       uint           `gorm:"not null;index" json:"to_club_id"`
	ToClub         *Club          `gorm:"foreignKey:ToClubID" json:"to_club,omitempty"`
	TransferDate   time.Time      `json:"transfer_date"`
	Reason         string         `gorm:"type:text" json:"reason"`
	Status         ApprovalStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	RegisteredByID uint           `gorm:"not null;index" json:"registered_by_id"`
	ApprovedByID   *uint          `gorm:"index" json:"approved_by_id,omitempty"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	RejectedByID   *uint          `gorm:"index" json:"rejected_by_id,omitempty"`
	RejectedAt     *time.Time     `json:"rejected_at,omitempty"`
}
