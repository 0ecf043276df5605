package models

import "time"

// Branches a club may compete in.
var Branches = []string{"u15", "u17", "u19", "senior", "youth", "junior"}

type Club struct {
	Base
	Name          string       `gorm:"size:150;not null;index" json:"name"`
	FoundedAt     time.Time    `json:"founded_at"`
	Branch        string       `gorm:"size:20" json:"branch"`
	Category      string       `gorm:"size:50" json:"category"`
	Address       string       `gorm:"type:text" json:"address"`
	Phone         string       `gorm:"size:20" json:"phone"`
	Email         string       `gorm:"size:150" json:"email"`
	Logo          string       `gorm:"size:255" json:"logo,omitempty"`
	Status        RecordStatus `gorm:"size:20;not null;default:active;index" json:"status"`
	ResponsibleID uint         `gorm:"not null;index" json:"responsible_id"`
	Responsible   *User        `gorm:"foreignKey:ResponsibleID" json:"responsible,omitempty"`
}

// ClubAthlete records which athletes belong to which club.
type ClubAthlete struct {
	Base
	ClubID    uint         `gorm:"not null;index" json:"club_id"`
	Club      *Club        `json:"club,omitempty"`
	AthleteID uint         `gorm:"not null;index" json:"athlete_id"`
	Athlete   *Athlete     `json:"athlete,omitempty"`
	JoinedAt  time.Time    `gorm:"not null" json:"joined_at"`
	Status    RecordStatus `gorm:"size:20;not null;default:active" json:"status"`
}
