package result

type CreateResultRequest struct {
	MatchID         uint   `json:"match_id" binding:"required"`
	HomeSets        int    `json:"home_sets"`
	AwaySets        int    `json:"away_sets"`
	HomePoints      int    `json:"home_points"`
	AwayPoints      int    `json:"away_points"`
	DurationMinutes *int   `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

type UpdateResultRequest struct {
	HomeSets        *int    `json:"home_sets"`
	AwaySets        *int    `json:"away_sets"`
	HomePoints      *int    `json:"home_points"`
	AwayPoints      *int    `json:"away_points"`
	DurationMinutes *int    `json:"duration_minutes"`
	Notes           *string `json:"notes"`
}

type Filter struct {
	MatchID *uint
}
