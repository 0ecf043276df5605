package result

import (
	"context"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
)

// Service registers the final score of finished matches. It never changes
// the match status; finishing a match is the match lifecycle's job.
type Service struct {
	repo ResultRepository
	refs *refcheck.Checker
}

func NewService(repo ResultRepository, refs *refcheck.Checker) *Service {
	return &Service{repo: repo, refs: refs}
}

func validate(r *models.Result) error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"home_sets", r.HomeSets},
		{"away_sets", r.AwaySets},
		{"home_points", r.HomePoints},
		{"away_points", r.AwayPoints},
	} {
		if f.v < 0 {
			return apperr.Validation(f.name, f.name+" must be greater than or equal to 0")
		}
	}
	if r.DurationMinutes != nil && *r.DurationMinutes < 0 {
		return apperr.Validation("duration_minutes", "duration_minutes must be greater than or equal to 0")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, callerID uint, req CreateResultRequest) (*models.Result, error) {
	res := &models.Result{
		MatchID:         req.MatchID,
		HomeSets:        req.HomeSets,
		AwaySets:        req.AwaySets,
		HomePoints:      req.HomePoints,
		AwayPoints:      req.AwayPoints,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		RegisteredByID:  callerID,
	}
	if err := validate(res); err != nil {
		return nil, err
	}
	m, err := s.refs.Match(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}
	if m.Status != models.MatchFinished {
		return nil, apperr.Conflict("match %d is %s; results can only be registered for finished matches", m.ID, m.Status)
	}
	exists, err := s.repo.ExistsForMatch(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("match %d already has a result", m.ID)
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, apperr.FromDB(err, "match %d already has a result", m.ID)
	}
	logging.FromContext(ctx).Info("result registered", "result_id", res.ID, "match_id", m.ID, "registered_by", callerID)
	return res, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Result, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, apperr.NotFound("result", id)
	}
	return res, nil
}

func (s *Service) List(ctx context.Context, f Filter, page, limit int) ([]models.Result, int64, error) {
	return s.repo.List(ctx, f, page, limit)
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateResultRequest) (*models.Result, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, f := range []struct {
		dst *int
		v   *int
	}{
		{&res.HomeSets, req.HomeSets},
		{&res.AwaySets, req.AwaySets},
		{&res.HomePoints, req.HomePoints},
		{&res.AwayPoints, req.AwayPoints},
	} {
		if f.v != nil {
			*f.dst = *f.v
		}
	}
	if req.DurationMinutes != nil {
		res.DurationMinutes = req.DurationMinutes
	}
	if req.Notes != nil {
		res.Notes = *req.Notes
	}
	if err := validate(res); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Delete removes the result. The match stays finished.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
