package transfer

import (
	"context"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/statemachine"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
	"github.com/DhavalSuthar-24/clubhub/pkg/metrics"
)

// Machine is the transfer lifecycle: a pending transfer is decided once.
var Machine = statemachine.New("transfer", map[models.ApprovalStatus][]models.ApprovalStatus{
	models.ApprovalPending: {models.ApprovalApproved, models.ApprovalRejected},
})

type Service struct {
	repo  TransferRepository
	refs  *refcheck.Checker
	clock clock.Clock
}

func NewService(repo TransferRepository, refs *refcheck.Checker, clk clock.Clock) *Service {
	return &Service{repo: repo, refs: refs, clock: clk}
}

func (s *Service) Create(ctx context.Context, callerID uint, req CreateTransferRequest) (*models.Transfer, error) {
	if req.FromClubID == req.ToClubID {
		return nil, apperr.Validation("to_club_id", "origin and destination clubs must differ")
	}
	date := s.clock.Now()
	if req.TransferDate != nil {
		var err error
		if date, err = common.ParseDate("transfer_date", *req.TransferDate); err != nil {
			return nil, err
		}
	}
	if _, err := s.refs.Athlete(ctx, req.AthleteID); err != nil {
		return nil, err
	}
	if _, err := s.refs.ClubAs(ctx, req.FromClubID, "origin club"); err != nil {
		return nil, err
	}
	if _, err := s.refs.ActiveClubAs(ctx, req.ToClubID, "destination club"); err != nil {
		return nil, err
	}
	pending, err := s.repo.HasPending(ctx, req.AthleteID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperr.Conflict("athlete %d already has a pending transfer", req.AthleteID)
	}
	membership, err := s.refs.ActiveMembership(ctx, req.FromClubID, req.AthleteID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, apperr.Conflict("athlete %d is not an active member of club %d", req.AthleteID, req.FromClubID)
	}

	t := &models.Transfer{
		AthleteID:      req.AthleteID,
		FromClubID:     req.FromClubID,
		ToClubID:       req.ToClubID,
		TransferDate:   date,
		Reason:         req.Reason,
		Status:         models.ApprovalPending,
		RegisteredByID: callerID,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, apperr.FromDB(err, "athlete %d already has a pending transfer", req.AthleteID)
	}
	logging.FromContext(ctx).Info("transfer registered", "transfer_id", t.ID, "athlete_id", t.AthleteID)
	return t, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Transfer, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("transfer", id)
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, status string, page, limit int) ([]models.Transfer, int64, error) {
	switch models.ApprovalStatus(status) {
	case "", models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected:
	default:
		return nil, 0, apperr.Validation("status", "status must be one of: pending approved rejected")
	}
	return s.repo.List(ctx, status, page, limit)
}

// Update edits a transfer that has not been decided yet.
func (s *Service) Update(ctx context.Context, id uint, req UpdateTransferRequest) (*models.Transfer, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != models.ApprovalPending {
		return nil, apperr.Conflict("transfer %d is %s; only pending transfers can be changed", id, t.Status)
	}
	if req.ToClubID != nil {
		if *req.ToClubID == t.FromClubID {
			return nil, apperr.Validation("to_club_id", "origin and destination clubs must differ")
		}
		club, err := s.refs.ActiveClubAs(ctx, *req.ToClubID, "destination club")
		if err != nil {
			return nil, err
		}
		t.ToClubID = club.ID
		t.ToClub = club
	}
	if req.TransferDate != nil {
		if t.TransferDate, err = common.ParseDate("transfer_date", *req.TransferDate); err != nil {
			return nil, err
		}
	}
	if req.Reason != nil {
		t.Reason = *req.Reason
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Approve moves the athlete: the origin membership is closed and an active
// membership at the destination starts at the approval time. All of it
// happens in one transaction.
func (s *Service) Approve(ctx context.Context, approverID, id uint) (*models.Transfer, error) {
	now := s.clock.Now()
	err := s.repo.Transaction(ctx, func(repo TransferRepository) error {
		t, err := repo.Lock(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return apperr.NotFound("transfer", id)
		}
		if err := Machine.Check(t.Status, models.ApprovalApproved); err != nil {
			return err
		}
		// the destination may have been deactivated since the request
		if _, err := repo.Refs().ActiveClubAs(ctx, t.ToClubID, "destination club"); err != nil {
			return err
		}
		closed, err := repo.DeactivateMembership(ctx, t.FromClubID, t.AthleteID)
		if err != nil {
			return err
		}
		if closed == 0 {
			return apperr.Conflict("athlete %d is no longer an active member of club %d", t.AthleteID, t.FromClubID)
		}
		ca := &models.ClubAthlete{ClubID: t.ToClubID, AthleteID: t.AthleteID, JoinedAt: now, Status: models.StatusActive}
		if err := repo.CreateMembership(ctx, ca); err != nil {
			return apperr.FromDB(err, "athlete %d is already an active member of club %d", t.AthleteID, t.ToClubID)
		}
		t.Status = models.ApprovalApproved
		t.ApprovedByID = &approverID
		t.ApprovedAt = &now
		return repo.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	metrics.ObserveTransition("transfer", string(models.ApprovalPending), string(models.ApprovalApproved))
	logging.FromContext(ctx).Info("transfer approved", "transfer_id", id, "approved_by", approverID)
	return s.Get(ctx, id)
}

func (s *Service) Reject(ctx context.Context, rejecterID, id uint) (*models.Transfer, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Machine.Transition(t.Status, models.ApprovalRejected); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	t.Status = models.ApprovalRejected
	t.RejectedByID = &rejecterID
	t.RejectedAt = &now
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("transfer rejected", "transfer_id", id, "rejected_by", rejecterID)
	return t, nil
}
