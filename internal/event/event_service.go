package event

import (
	"context"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/statemachine"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
)

// UpcomingLimit caps the upcoming-events listing.
const UpcomingLimit = 5

var Machine = statemachine.New("event", map[models.EventStatus][]models.EventStatus{
	models.EventPlanned:    {models.EventInProgress, models.EventCancelled},
	models.EventInProgress: {models.EventFinished, models.EventCancelled},
})

type Service struct {
	repo  EventRepository
	refs  *refcheck.Checker
	clock clock.Clock
}

func NewService(repo EventRepository, refs *refcheck.Checker, clk clock.Clock) *Service {
	return &Service{repo: repo, refs: refs, clock: clk}
}

func (s *Service) Create(ctx context.Context, callerID uint, req CreateEventRequest) (*models.Event, error) {
	start, end, err := dateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	organizerID := callerID
	if req.OrganizerID != nil {
		organizerID = *req.OrganizerID
	}
	if _, err := s.refs.UserAs(ctx, organizerID, "organizer"); err != nil {
		return nil, err
	}
	location := strings.TrimSpace(req.Location)
	if err := s.ensureFreeVenue(ctx, location, start, end, 0); err != nil {
		return nil, err
	}

	e := &models.Event{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Type:        models.EventType(req.Type),
		Location:    location,
		OrganizerID: organizerID,
		Status:      models.EventPlanned,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("event created", "event_id", e.ID, "location", e.Location)
	return e, nil
}

func dateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := common.ParseDate("start_date", startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := common.ParseDate("end_date", endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if err := checkOrder(start, end); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func checkOrder(start, end time.Time) error {
	if start.After(end) {
		return apperr.Validation("end_date", "end_date must not be before start_date")
	}
	return nil
}

func (s *Service) ensureFreeVenue(ctx context.Context, location string, start, end time.Time, selfID uint) error {
	n, err := s.repo.Overlapping(ctx, location, start, end, selfID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("another event at %s overlaps %s to %s", location, start.Format(common.DateLayout), end.Format(common.DateLayout))
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("event", id)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, f Filter, page, limit int) ([]models.Event, int64, error) {
	if f.Type != "" && !models.EventType(f.Type).Valid() {
		return nil, 0, apperr.Validation("type", "type must be one of: tournament friendly qualifier championship")
	}
	return s.repo.List(ctx, f, page, limit)
}

// Active lists events currently in progress.
func (s *Service) Active(ctx context.Context) ([]models.Event, error) {
	return s.repo.InProgress(ctx)
}

// Upcoming lists the next planned events, soonest first.
func (s *Service) Upcoming(ctx context.Context) ([]models.Event, error) {
	return s.repo.Upcoming(ctx, s.clock.Now(), UpcomingLimit)
}

// Update edits a planned event. The venue is re-checked against the other
// events.
func (s *Service) Update(ctx context.Context, id uint, req UpdateEventRequest) (*models.Event, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status != models.EventPlanned {
		return nil, apperr.Conflict("event %d is %s; only planned events can be changed", id, e.Status)
	}
	if req.StartDate != nil {
		if e.StartDate, err = common.ParseDate("start_date", *req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if e.EndDate, err = common.ParseDate("end_date", *req.EndDate); err != nil {
			return nil, err
		}
	}
	if err := checkOrder(e.StartDate, e.EndDate); err != nil {
		return nil, err
	}
	if req.OrganizerID != nil {
		if _, err := s.refs.UserAs(ctx, *req.OrganizerID, "organizer"); err != nil {
			return nil, err
		}
		e.OrganizerID = *req.OrganizerID
	}
	if req.Name != nil {
		e.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Type != nil {
		e.Type = models.EventType(*req.Type)
	}
	if req.Location != nil {
		e.Location = strings.TrimSpace(*req.Location)
	}
	if err := s.ensureFreeVenue(ctx, e.Location, e.StartDate, e.EndDate, e.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ChangeStatus moves the event through its lifecycle and stamps the actual
// start and end times.
func (s *Service) ChangeStatus(ctx context.Context, id uint, to models.EventStatus) (*models.Event, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Machine.Transition(e.Status, to); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	switch to {
	case models.EventInProgress:
		e.ActualStartAt = &now
	case models.EventFinished:
		e.ActualEndAt = &now
	}
	e.Status = to
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("event status changed", "event_id", id, "status", to)
	return e, nil
}

// Cancel is the delete operation: events are never removed.
func (s *Service) Cancel(ctx context.Context, id uint) error {
	_, err := s.ChangeStatus(ctx, id, models.EventCancelled)
	return err
}

func (s *Service) Enrollments(ctx context.Context, id uint, status string) ([]models.Enrollment, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Enrollments(ctx, id, status)
}

func (s *Service) Matches(ctx context.Context, id uint) ([]models.Match, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Matches(ctx, id)
}

func (s *Service) Results(ctx context.Context, id uint) ([]models.Result, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Results(ctx, id)
}
