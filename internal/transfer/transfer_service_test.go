package transfer

import (
	"context"
	"fmt"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/metrics"
)

type fixture struct {
	db      *gorm.DB
	svc     *Service
	clock   *clock.Fixed
	manager models.User
	admin   models.User
	origin  models.Club
	dest    models.Club
	athlete models.Athlete
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.SeedRBAC(t, db)
	clk := testutil.NewClock()
	f := fixture{
		db:      db,
		svc:     NewService(NewTransferRepository(db), refcheck.New(db), clk),
		clock:   clk,
		manager: testutil.CreateUser(t, db, "manager", models.RoleClubManager),
		admin:   testutil.CreateUser(t, db, "admin", models.RoleAdmin),
		athlete: testutil.CreateAthlete(t, db, "6001"),
	}
	f.origin = testutil.CreateClub(t, db, "Origin", f.manager.ID)
	f.dest = testutil.CreateClub(t, db, "Destination", f.manager.ID)
	testutil.AddMember(t, db, f.origin.ID, f.athlete.ID)
	return f
}

func (f fixture) request() CreateTransferRequest {
	return CreateTransferRequest{AthleteID: f.athlete.ID, FromClubID: f.origin.ID, ToClubID: f.dest.ID, Reason: "more minutes"}
}

func TestCreateTransfer(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	same := f.request()
	same.ToClubID = f.origin.ID
	_, err := f.svc.Create(ctx, f.manager.ID, same)
	require.ErrorIs(t, err, apperr.ErrValidation)

	missing := f.request()
	missing.ToClubID = 999
	_, err = f.svc.Create(ctx, f.manager.ID, missing)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.EqualError(t, err, "destination club with id 999 not found")

	stranger := testutil.CreateAthlete(t, f.db, "6002")
	notMember := f.request()
	notMember.AthleteID = stranger.ID
	_, err = f.svc.Create(ctx, f.manager.ID, notMember)
	require.ErrorIs(t, err, apperr.ErrConflict)

	tr, err := f.svc.Create(ctx, f.manager.ID, f.request())
	require.NoError(t, err)
	require.Equal(t, models.ApprovalPending, tr.Status)
	require.Equal(t, f.manager.ID, tr.RegisteredByID)
	require.True(t, tr.TransferDate.Equal(testutil.Epoch))

	_, err = f.svc.Create(ctx, f.manager.ID, f.request())
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.EqualError(t, err, "athlete 1 already has a pending transfer")
}

func TestApproveFlipsMemberships(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tr, err := f.svc.Create(ctx, f.manager.ID, f.request())
	require.NoError(t, err)

	metrics.Init()
	approvals := metrics.TransitionCounter("transfer", "pending", "approved")
	before := promtest.ToFloat64(approvals)

	f.clock.Advance(48 * time.Hour)
	approved, err := f.svc.Approve(ctx, f.admin.ID, tr.ID)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalApproved, approved.Status)
	require.Equal(t, f.admin.ID, *approved.ApprovedByID)
	require.True(t, approved.ApprovedAt.Equal(testutil.Epoch.Add(48*time.Hour)))

	var rows []models.ClubAthlete
	require.NoError(t, f.db.Where("athlete_id = ?", f.athlete.ID).Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)
	require.Equal(t, f.origin.ID, rows[0].ClubID)
	require.Equal(t, models.StatusInactive, rows[0].Status)
	require.Equal(t, f.dest.ID, rows[1].ClubID)
	require.Equal(t, models.StatusActive, rows[1].Status)
	require.True(t, rows[1].JoinedAt.Equal(testutil.Epoch.Add(48*time.Hour)))

	_, err = f.svc.Approve(ctx, f.admin.ID, tr.ID)
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.EqualError(t, err, "transition not permitted: from approved to approved")
	require.Equal(t, before+1, promtest.ToFloat64(approvals))

	_, err = f.svc.Reject(ctx, f.admin.ID, tr.ID)
	require.EqualError(t, err, "transition not permitted: from approved to rejected")

	reason := "changed mind"
	_, err = f.svc.Update(ctx, tr.ID, UpdateTransferRequest{Reason: &reason})
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestApproveRollsBackWhenOriginMembershipIsGone(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tr, err := f.svc.Create(ctx, f.manager.ID, f.request())
	require.NoError(t, err)
	require.NoError(t, f.db.Model(&models.ClubAthlete{}).Where("athlete_id = ?", f.athlete.ID).Update("status", models.StatusInactive).Error)

	_, err = f.svc.Approve(ctx, f.admin.ID, tr.ID)
	require.ErrorIs(t, err, apperr.ErrConflict)

	got, err := f.svc.Get(ctx, tr.ID)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalPending, got.Status)
	require.Nil(t, got.ApprovedByID)

	var n int64
	require.NoError(t, f.db.Model(&models.ClubAthlete{}).Where("club_id = ?", f.dest.ID).Count(&n).Error)
	require.Zero(t, n)
}

func TestInactiveDestinationIsRefused(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	third := testutil.CreateClub(t, f.db, "Third", f.manager.ID)
	testutil.DeactivateClub(t, f.db, third.ID)

	toInactive := f.request()
	toInactive.ToClubID = third.ID
	_, err := f.svc.Create(ctx, f.manager.ID, toInactive)
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.EqualError(t, err, fmt.Sprintf("destination club %d is inactive", third.ID))

	tr, err := f.svc.Create(ctx, f.manager.ID, f.request())
	require.NoError(t, err)

	to := third.ID
	_, err = f.svc.Update(ctx, tr.ID, UpdateTransferRequest{ToClubID: &to})
	require.ErrorIs(t, err, apperr.ErrConflict)

	// deactivated after the request was filed
	testutil.DeactivateClub(t, f.db, f.dest.ID)
	_, err = f.svc.Approve(ctx, f.admin.ID, tr.ID)
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.EqualError(t, err, fmt.Sprintf("destination club %d is inactive", f.dest.ID))

	got, err := f.svc.Get(ctx, tr.ID)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalPending, got.Status)
	require.Equal(t, f.dest.ID, got.ToClubID)

	var n int64
	require.NoError(t, f.db.Model(&models.ClubAthlete{}).Where("club_id = ?", f.dest.ID).Count(&n).Error)
	require.Zero(t, n)
	ca, err := refcheck.New(f.db).ActiveMembership(ctx, f.origin.ID, f.athlete.ID)
	require.NoError(t, err)
	require.NotNil(t, ca)
}

func TestRejectAndUpdate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	third := testutil.CreateClub(t, f.db, "Third", f.manager.ID)

	tr, err := f.svc.Create(ctx, f.manager.ID, f.request())
	require.NoError(t, err)

	back := f.origin.ID
	_, err = f.svc.Update(ctx, tr.ID, UpdateTransferRequest{ToClubID: &back})
	require.ErrorIs(t, err, apperr.ErrValidation)

	to := third.ID
	date := "2025-04-01"
	tr, err = f.svc.Update(ctx, tr.ID, UpdateTransferRequest{ToClubID: &to, TransferDate: &date})
	require.NoError(t, err)
	require.Equal(t, third.ID, tr.ToClubID)
	require.Equal(t, time.April, tr.TransferDate.Month())

	rejected, err := f.svc.Reject(ctx, f.admin.ID, tr.ID)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalRejected, rejected.Status)
	require.Equal(t, f.admin.ID, *rejected.RejectedByID)
	require.NotNil(t, rejected.RejectedAt)

	// the athlete stays where it was
	ca, err := refcheck.New(f.db).ActiveMembership(ctx, f.origin.ID, f.athlete.ID)
	require.NoError(t, err)
	require.NotNil(t, ca)

	// a decided transfer no longer blocks a new one
	_, err = f.svc.Create(ctx, f.manager.ID, f.request())
	require.NoError(t, err)

	list, total, err := f.svc.List(ctx, "rejected", 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, rejected.ID, list[0].ID)

	_, _, err = f.svc.List(ctx, "lost", 1, 20)
	require.ErrorIs(t, err, apperr.ErrValidation)
}
