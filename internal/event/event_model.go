package event

import "github.com/DhavalSuthar-24/clubhub/internal/models"

type CreateEventRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=150"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=tournament friendly qualifier championship"`
	Location    string `json:"location" binding:"required,notblank,max=255"`
	// OrganizerID defaults to the caller.
	OrganizerID *uint `json:"organizer_id"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=150"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Type        *string `json:"type" binding:"omitempty,oneof=tournament friendly qualifier championship"`
	Location    *string `json:"location" binding:"omitempty,notblank,max=255"`
	OrganizerID *uint   `json:"organizer_id"`
}

type StatusRequest struct {
	Status models.EventStatus `json:"status" binding:"required,oneof=planned in_progress finished cancelled"`
}

type Filter struct {
	Type   string
	Status string
	// IncludeCancelled lists cancelled events when no status is given.
	IncludeCancelled bool
}
