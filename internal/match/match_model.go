package match

import (
	"time"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type CreateMatchRequest struct {
	EventID    uint `json:"event_id" binding:"required"`
	HomeClubID uint `json:"home_club_id" binding:"required"`
	AwayClubID uint `json:"away_club_id" binding:"required"`
	// ScheduledAt is an RFC3339 timestamp.
	ScheduledAt        string `json:"scheduled_at" binding:"required"`
	Location           string `json:"location" binding:"required,notblank,max=255"`
	MainRefereeID      *uint  `json:"main_referee_id"`
	AssistantRefereeID *uint  `json:"assistant_referee_id"`
}

type UpdateMatchRequest struct {
	HomeClubID         *uint   `json:"home_club_id"`
	AwayClubID         *uint   `json:"away_club_id"`
	ScheduledAt        *string `json:"scheduled_at"`
	Location           *string `json:"location" binding:"omitempty,notblank,max=255"`
	MainRefereeID      *uint   `json:"main_referee_id"`
	AssistantRefereeID *uint   `json:"assistant_referee_id"`
}

type StatusRequest struct {
	Status models.MatchStatus `json:"status" binding:"required,oneof=scheduled in_progress finished cancelled"`
	// Reason is mandatory when Status is cancelled.
	Reason string `json:"reason"`
}

type CancellationReasonRequest struct {
	Reason string `json:"reason" binding:"required,notblank"`
}

type Filter struct {
	From   *time.Time
	To     *time.Time
	Status string
}
