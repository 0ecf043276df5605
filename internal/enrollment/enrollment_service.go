package enrollment

import (
	"context"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/statemachine"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
)

var Machine = statemachine.New("enrollment", map[models.ApprovalStatus][]models.ApprovalStatus{
	models.ApprovalPending: {models.ApprovalApproved, models.ApprovalRejected},
})

type Service struct {
	repo  EnrollmentRepository
	refs  *refcheck.Checker
	clock clock.Clock
}

func NewService(repo EnrollmentRepository, refs *refcheck.Checker, clk clock.Clock) *Service {
	return &Service{repo: repo, refs: refs, clock: clk}
}

// Create enrolls a club in a planned event. A club enrolls at most once
// per event, whatever became of earlier requests.
func (s *Service) Create(ctx context.Context, callerID uint, req CreateEnrollmentRequest) (*models.Enrollment, error) {
	event, err := s.refs.Event(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if _, err := s.refs.ActiveClub(ctx, req.ClubID); err != nil {
		return nil, err
	}
	if event.Status != models.EventPlanned {
		return nil, apperr.Conflict("event %d is %s; enrollments are only accepted while planned", event.ID, event.Status)
	}
	exists, err := s.repo.Exists(ctx, req.EventID, req.ClubID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("club %d is already enrolled in event %d", req.ClubID, req.EventID)
	}

	e := &models.Enrollment{
		EventID:        req.EventID,
		ClubID:         req.ClubID,
		EnrolledAt:     s.clock.Now(),
		Status:         models.ApprovalPending,
		RegisteredByID: callerID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, apperr.FromDB(err, "club %d is already enrolled in event %d", req.ClubID, req.EventID)
	}
	logging.FromContext(ctx).Info("club enrolled", "event_id", e.EventID, "club_id", e.ClubID)
	return e, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Enrollment, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("enrollment", id)
	}
	return e, nil
}

func (s *Service) Approve(ctx context.Context, userID, id uint) (*models.Enrollment, error) {
	return s.decide(ctx, userID, id, models.ApprovalApproved)
}

func (s *Service) Reject(ctx context.Context, userID, id uint) (*models.Enrollment, error) {
	return s.decide(ctx, userID, id, models.ApprovalRejected)
}

func (s *Service) decide(ctx context.Context, userID, id uint, to models.ApprovalStatus) (*models.Enrollment, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Machine.Transition(e.Status, to); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if to == models.ApprovalApproved {
		e.ApprovedByID = &userID
		e.ApprovedAt = &now
	} else {
		e.RejectedByID = &userID
		e.RejectedAt = &now
	}
	e.Status = to
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("enrollment decided", "enrollment_id", id, "status", to, "by", userID)
	return e, nil
}
