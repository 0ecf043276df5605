package models

import "time"

type EventStatus string

const (
	EventPlanned    EventStatus = "planned"
	EventInProgress EventStatus = "in_progress"
	EventFinished   EventStatus = "finished"
	EventCancelled  EventStatus = "cancelled"
)

type EventType string

const (
	EventTournament   EventType = "tournament"
	EventFriendly     EventType = "friendly"
	EventQualifier    EventType = "qualifier"
	EventChampionship EventType = "championship"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTournament, EventFriendly, EventQualifier, EventChampionship:
		return true
	}
	return false
}

type Event struct {
	Base
	Name          string      `gorm:"size:150;not null" json:"name"`
	Description   string      `gorm:"type:text" json:"description"`
	StartDate     time.Time   `gorm:"not null;index" json:"start_date"`
	EndDate       time.Time   `gorm:"not null" json:"end_date"`
	Type          EventType   `gorm:"size:20;not null;index" json:"type"`
	Location      string      `gorm:"size:255;not null" json:"location"`
	OrganizerID   uint        `gorm:"not null;index" json:"organizer_id"`
	Organizer     *User       `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Status        EventStatus `gorm:"size:20;not null;default:planned;index" json:"status"`
	ActualStartAt *time.Time  `json:"actual_start_at,omitempty"`
	ActualEndAt   *time.Time  `json:"actual_end_at,omitempty"`
}

// Enrollment is a club's request to take part in an event.
type Enrollment struct {
	Base
	EventID        uint           `gorm:"not null;uniqueIndex:uq_enrollments_event_club" json:"event_id"`
	Event          *Event         `json:"event,omitempty"`
	ClubID         uint           `gorm:"not null;uniqueIndex:uq_enrollments_event_club" json:"club_id"`
	Club           *Club          `json:"club,omitempty"`
	EnrolledAt     time.Time      `json:"enrolled_at"`
	Status         ApprovalStatus `gorm:"size:20;not null;default:pending" json:"status"`
	RegisteredByID uint           `gorm:"not null;index" json:"registered_by_id"`
	ApprovedByID   *uint          `gorm:"index" json:"approved_by_id,omitempty"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	RejectedByID   *uint          `gorm:"index" json:"rejected_by_id,omitempty"`
	RejectedAt     *time.Time     `json:"rejected_at,omitempty"`
}
