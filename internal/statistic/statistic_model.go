package statistic

type CreateStatisticRequest struct {
	MatchID   uint `json:"match_id" binding:"required"`
	AthleteID uint `json:"athlete_id" binding:"required"`
	Serves    int  `json:"serves"`
	Attacks   int  `json:"attacks"`
	Blocks    int  `json:"blocks"`
	Defenses  int  `json:"defenses"`
	Points    int  `json:"points"`
	Errors    int  `json:"errors"`
}

type UpdateStatisticRequest struct {
	Serves   *int `json:"serves"`
	Attacks  *int `json:"attacks"`
	Blocks   *int `json:"blocks"`
	Defenses *int `json:"defenses"`
	Points   *int `json:"points"`
	Errors   *int `json:"errors"`
}

// Summary is the sum of an athlete's counters over every recorded match.
type Summary struct {
	AthleteID     uint  `json:"athlete_id"`
	Serves        int64 `json:"serves"`
	Attacks       int64 `json:"attacks"`
	Blocks        int64 `json:"blocks"`
	Defenses      int64 `json:"defenses"`
	Points        int64 `json:"points"`
	Errors        int64 `json:"errors"`
	MatchesPlayed int64 `json:"matches_played"`
}
