package models

import "time"

type MatchStatus string

const (
	MatchScheduled  MatchStatus = "scheduled"
	MatchInProgress MatchStatus = "in_progress"
	MatchFinished   MatchStatus = "finished"
	MatchCancelled  MatchStatus = "cancelled"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchScheduled, MatchInProgress, MatchFinished, MatchCancelled:
		return true
	}
	return false
}

type Match struct {
	Base
	EventID            uint        `gorm:"not null;index" json:"event_id"`
	Event              *Event      `json:"event,omitempty"`
	HomeClubID         uint        `gorm:"not null;index" json:"home_club_id"`
	HomeClub           *Club       `gorm:"foreignKey:HomeClubID" json:"home_club,omitempty"`
	AwayClubID         uint        `gorm:"not null;index" json:"away_club_id"`
	AwayClub           *Club       `gorm:"foreignKey:AwayClubID" json:"away_club,omitempty"`
	ScheduledAt        time.Time   `gorm:"not null;index" json:"scheduled_at"`
	Location           string      `gorm:"size:255;not null" json:"location"`
	Status             MatchStatus `gorm:"size:20;not null;default:scheduled;index" json:"status"`
	StartedAt          *time.Time  `json:"started_at,omitempty"`
	EndedAt            *time.Time  `json:"ended_at,omitempty"`
	CancellationReason string      `gorm:"type:text" json:"cancellation_reason,omitempty"`
	MainRefereeID      *uint       `gorm:"index" json:"main_referee_id,omitempty"`
	AssistantRefereeID *uint       `gorm:"index" json:"assistant_referee_id,omitempty"`
	Result             *Result     `json:"result,omitempty"`
}

// Result is the final score of a finished match.
type Result struct {
	Base
	MatchID         uint   `gorm:"not null;uniqueIndex" json:"match_id"`
	HomeSets        int    `gorm:"not null" json:"home_sets"`
	AwaySets        int    `gorm:"not null" json:"away_sets"`
	HomePoints      int    `json:"home_points"`
	AwayPoints      int    `json:"away_points"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	Notes           string `gorm:"type:text" json:"notes,omitempty"`
	RegisteredByID  uint   `gorm:"not null;index" json:"registered_by_id"`
}

// MatchStatistic holds one athlete's counters for one match.
type MatchStatistic struct {
	Base
	MatchID   uint     `gorm:"not null;uniqueIndex:uq_match_statistics_match_athlete" json:"match_id"`
	AthleteID uint     `gorm:"not null;uniqueIndex:uq_match_statistics_match_athlete;index" json:"athlete_id"`
	Athlete   *Athlete `json:"athlete,omitempty"`
	Serves    int      `gorm:"not null;default:0" json:"serves"`
	Attacks   int      `gorm:"not null;default:0" json:"attacks"`
	Blocks    int      `gorm:"not null;default:0" json:"blocks"`
	Defenses  int      `gorm:"not null;default:0" json:"defenses"`
	Points    int      `gorm:"not null;default:0" json:"points"`
	Errors    int      `gorm:"not null;default:0" json:"errors"`
}
