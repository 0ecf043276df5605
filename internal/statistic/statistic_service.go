package statistic

import (
	"context"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
)

type Service struct {
	repo StatisticRepository
	refs *refcheck.Checker
}

func NewService(repo StatisticRepository, refs *refcheck.Checker) *Service {
	return &Service{repo: repo, refs: refs}
}

func nonNegative(counters map[string]int) error {
	for _, name := range []string{"serves", "attacks", "blocks", "defenses", "points", "errors"} {
		if counters[name] < 0 {
			return apperr.Validation(name, name+" must be greater than or equal to 0")
		}
	}
	return nil
}

func counters(s *models.MatchStatistic) map[string]int {
	return map[string]int{
		"serves":   s.Serves,
		"attacks":  s.Attacks,
		"blocks":   s.Blocks,
		"defenses": s.Defenses,
		"points":   s.Points,
		"errors":   s.Errors,
	}
}

func (s *Service) Create(ctx context.Context, req CreateStatisticRequest) (*models.MatchStatistic, error) {
	stat := &models.MatchStatistic{
		MatchID:   req.MatchID,
		AthleteID: req.AthleteID,
		Serves:    req.Serves,
		Attacks:   req.Attacks,
		Blocks:    req.Blocks,
		Defenses:  req.Defenses,
		Points:    req.Points,
		Errors:    req.Errors,
	}
	if err := nonNegative(counters(stat)); err != nil {
		return nil, err
	}
	if _, err := s.refs.Match(ctx, req.MatchID); err != nil {
		return nil, err
	}
	if _, err := s.refs.Athlete(ctx, req.AthleteID); err != nil {
		return nil, err
	}
	exists, err := s.repo.Exists(ctx, req.MatchID, req.AthleteID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("statistics for athlete %d in match %d already exist", req.AthleteID, req.MatchID)
	}
	if err := s.repo.Create(ctx, stat); err != nil {
		return nil, apperr.FromDB(err, "statistics for athlete %d in match %d already exist", req.AthleteID, req.MatchID)
	}
	return stat, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.MatchStatistic, error) {
	stat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		return nil, apperr.NotFound("statistic", id)
	}
	return stat, nil
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateStatisticRequest) (*models.MatchStatistic, error) {
	stat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, f := range []struct {
		dst *int
		v   *int
	}{
		{&stat.Serves, req.Serves},
		{&stat.Attacks, req.Attacks},
		{&stat.Blocks, req.Blocks},
		{&stat.Defenses, req.Defenses},
		{&stat.Points, req.Points},
		{&stat.Errors, req.Errors},
	} {
		if f.v != nil {
			*f.dst = *f.v
		}
	}
	if err := nonNegative(counters(stat)); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, stat); err != nil {
		return nil, err
	}
	return stat, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ForMatch(ctx context.Context, matchID uint) ([]models.MatchStatistic, error) {
	if _, err := s.refs.Match(ctx, matchID); err != nil {
		return nil, err
	}
	return s.repo.ForMatch(ctx, matchID)
}

func (s *Service) ForAthlete(ctx context.Context, athleteID uint) ([]models.MatchStatistic, error) {
	if _, err := s.refs.Athlete(ctx, athleteID); err != nil {
		return nil, err
	}
	return s.repo.ForAthlete(ctx, athleteID)
}

// Summarize sums the athlete's counters across all matches.
func (s *Service) Summarize(ctx context.Context, athleteID uint) (*Summary, error) {
	if _, err := s.refs.Athlete(ctx, athleteID); err != nil {
		return nil, err
	}
	return s.repo.Summarize(ctx, athleteID)
}
