package match

import (
	"context"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/statemachine"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
)

var Machine = statemachine.New("match", map[models.MatchStatus][]models.MatchStatus{
	models.MatchScheduled:  {models.MatchInProgress, models.MatchCancelled},
	models.MatchInProgress: {models.MatchFinished, models.MatchCancelled},
})

type Service struct {
	repo  MatchRepository
	refs  *refcheck.Checker
	clock clock.Clock
}

func NewService(repo MatchRepository, refs *refcheck.Checker, clk clock.Clock) *Service {
	return &Service{repo: repo, refs: refs, clock: clk}
}

// ParseTime reads an RFC3339 timestamp and normalises it to UTC.
func ParseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperr.Validation(field, field+" must be an RFC3339 timestamp")
	}
	return t.UTC(), nil
}

func (s *Service) Create(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	at, err := ParseTime("scheduled_at", req.ScheduledAt)
	if err != nil {
		return nil, err
	}
	if _, err := s.refs.Event(ctx, req.EventID); err != nil {
		return nil, err
	}
	m := &models.Match{
		EventID:            req.EventID,
		HomeClubID:         req.HomeClubID,
		AwayClubID:         req.AwayClubID,
		ScheduledAt:        at,
		Location:           strings.TrimSpace(req.Location),
		Status:             models.MatchScheduled,
		MainRefereeID:      req.MainRefereeID,
		AssistantRefereeID: req.AssistantRefereeID,
	}
	if err := s.checkFixture(ctx, m); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("match scheduled",
		"match_id", m.ID, "event_id", m.EventID, "home_club_id", m.HomeClubID, "away_club_id", m.AwayClubID)
	return m, nil
}

// checkFixture validates the clubs, referees and slot of m. It runs on
// create and again on every update.
func (s *Service) checkFixture(ctx context.Context, m *models.Match) error {
	if _, err := s.refs.ActiveClubAs(ctx, m.HomeClubID, "home club"); err != nil {
		return err
	}
	if _, err := s.refs.ActiveClubAs(ctx, m.AwayClubID, "away club"); err != nil {
		return err
	}
	if m.HomeClubID == m.AwayClubID {
		return apperr.Conflict("home and away club must differ")
	}
	for _, clubID := range []uint{m.HomeClubID, m.AwayClubID} {
		ok, err := s.refs.ApprovedEnrollment(ctx, m.EventID, clubID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Conflict("club %d has no approved enrollment in event %d", clubID, m.EventID)
		}
	}
	if m.MainRefereeID != nil {
		if _, err := s.refs.UserAs(ctx, *m.MainRefereeID, "main referee"); err != nil {
			return err
		}
	}
	if m.AssistantRefereeID != nil {
		if _, err := s.refs.UserAs(ctx, *m.AssistantRefereeID, "assistant referee"); err != nil {
			return err
		}
	}
	n, err := s.repo.Clashing(ctx, m.Location, m.ScheduledAt, m.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("another match is scheduled at %s within two hours of %s", m.Location, m.ScheduledAt.Format(time.RFC3339))
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Match, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFound("match", id)
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, f Filter, page, limit int) ([]models.Match, int64, error) {
	if f.Status != "" && !models.MatchStatus(f.Status).Valid() {
		return nil, 0, apperr.Validation("status", "status must be one of: scheduled in_progress finished cancelled")
	}
	return s.repo.List(ctx, f, page, limit)
}

// Update edits a scheduled match and re-validates the whole fixture
// against the other matches.
func (s *Service) Update(ctx context.Context, id uint, req UpdateMatchRequest) (*models.Match, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != models.MatchScheduled {
		return nil, apperr.Conflict("match %d is %s; only scheduled matches can be changed", id, m.Status)
	}
	if req.ScheduledAt != nil {
		if m.ScheduledAt, err = ParseTime("scheduled_at", *req.ScheduledAt); err != nil {
			return nil, err
		}
	}
	if req.HomeClubID != nil {
		m.HomeClubID = *req.HomeClubID
	}
	if req.AwayClubID != nil {
		m.AwayClubID = *req.AwayClubID
	}
	if req.Location != nil {
		m.Location = strings.TrimSpace(*req.Location)
	}
	if req.MainRefereeID != nil {
		m.MainRefereeID = req.MainRefereeID
	}
	if req.AssistantRefereeID != nil {
		m.AssistantRefereeID = req.AssistantRefereeID
	}
	if err := s.checkFixture(ctx, m); err != nil {
		return nil, err
	}
	// the preloaded clubs would otherwise go stale in the response
	m.HomeClub, m.AwayClub = nil, nil
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// ChangeStatus moves the match through its lifecycle. Cancelling needs a
// reason, checked before the match is loaded.
func (s *Service) ChangeStatus(ctx context.Context, id uint, to models.MatchStatus, reason string) (*models.Match, error) {
	reason = strings.TrimSpace(reason)
	if to == models.MatchCancelled && reason == "" {
		return nil, apperr.Validation("reason", "a reason is required to cancel a match")
	}
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Machine.Transition(m.Status, to); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	switch to {
	case models.MatchInProgress:
		m.StartedAt = &now
	case models.MatchFinished:
		m.EndedAt = &now
	case models.MatchCancelled:
		m.CancellationReason = reason
	}
	m.Status = to
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("match status changed", "match_id", id, "status", to)
	return m, nil
}

func (s *Service) UpdateCancellationReason(ctx context.Context, id uint, reason string) (*models.Match, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperr.Validation("reason", "reason must not be blank")
	}
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != models.MatchCancelled {
		return nil, apperr.Conflict("match %d is %s; only cancelled matches carry a reason", id, m.Status)
	}
	m.CancellationReason = reason
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Result(ctx context.Context, id uint) (*models.Result, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Result == nil {
		return nil, apperr.NotFoundf("match %d has no result", id)
	}
	return m.Result, nil
}
