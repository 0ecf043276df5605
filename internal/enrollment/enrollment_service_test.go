package enrollment

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
)

func TestEnrollmentLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedRBAC(t, db)
	svc := NewService(NewEnrollmentRepository(db), refcheck.New(db), testutil.NewClock())
	ctx := context.Background()

	manager := testutil.CreateUser(t, db, "manager", models.RoleClubManager)
	organizer := testutil.CreateUser(t, db, "organizer", models.RoleOrganizer)
	club := testutil.CreateClub(t, db, "Winners", manager.ID)
	event := testutil.CreateEvent(t, db, organizer.ID, "Coliseo", testutil.Epoch.AddDate(0, 1, 0))

	_, err := svc.Create(ctx, manager.ID, CreateEnrollmentRequest{EventID: 99, ClubID: club.ID})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.Create(ctx, manager.ID, CreateEnrollmentRequest{EventID: event.ID, ClubID: 99})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	en, err := svc.Create(ctx, manager.ID, CreateEnrollmentRequest{EventID: event.ID, ClubID: club.ID})
	require.NoError(t, err)
	require.Equal(t, models.ApprovalPending, en.Status)
	require.Equal(t, manager.ID, en.RegisteredByID)

	_, err = svc.Create(ctx, manager.ID, CreateEnrollmentRequest{EventID: event.ID, ClubID: club.ID})
	require.ErrorIs(t, err, apperr.ErrConflict)

	rejected, err := svc.Reject(ctx, organizer.ID, en.ID)
	require.NoError(t, err)
	require.Equal(t, organizer.ID, *rejected.RejectedByID)

	// a rejected enrollment still counts
	_, err = svc.Create(ctx, manager.ID, CreateEnrollmentRequest{EventID: event.ID, ClubID: club.ID})
	require.ErrorIs(t, err, apperr.ErrConflict)

	_, err = svc.Approve(ctx, organizer.ID, en.ID)
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.EqualError(t, err, "transition not permitted: from rejected to approved")

	got, err := svc.Get(ctx, en.ID)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalRejected, got.Status)
	require.Nil(t, got.ApprovedByID)
	require.Nil(t, got.ApprovedAt)
	require.Equal(t, organizer.ID, *got.RejectedByID)
}

func TestEnrollmentNeedsActiveClub(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedRBAC(t, db)
	svc := NewService(NewEnrollmentRepository(db), refcheck.New(db), testutil.NewClock())
	ctx := context.Background()

	manager := testutil.CreateUser(t, db, "manager", models.RoleClubManager)
	organizer := testutil.CreateUser(t, db, "organizer", models.RoleOrganizer)
	club := testutil.CreateClub(t, db, "Retired", manager.ID)
	testutil.DeactivateClub(t, db, club.ID)
	event := testutil.CreateEvent(t, db, organizer.ID, "Coliseo", testutil.Epoch.AddDate(0, 1, 0))

	_, err := svc.Create(ctx, manager.ID, CreateEnrollmentRequest{EventID: event.ID, ClubID: club.ID})
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.EqualError(t, err, fmt.Sprintf("club %d is inactive", club.ID))

	var n int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestEnrollmentNeedsPlannedEvent(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedRBAC(t, db)
	svc := NewService(NewEnrollmentRepository(db), refcheck.New(db), testutil.NewClock())
	ctx := context.Background()

	manager := testutil.CreateUser(t, db, "manager", models.RoleClubManager)
	organizer := testutil.CreateUser(t, db, "organizer", models.RoleOrganizer)
	club := testutil.CreateClub(t, db, "Winners", manager.ID)
	other := testutil.CreateClub(t, db, "Others", manager.ID)
	event := testutil.CreateEvent(t, db, organizer.ID, "Coliseo", testutil.Epoch)

	en, err := svc.Create(ctx, manager.ID, CreateEnrollmentRequest{EventID: event.ID, ClubID: club.ID})
	require.NoError(t, err)
	approved, err := svc.Approve(ctx, organizer.ID, en.ID)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalApproved, approved.Status)
	require.True(t, approved.ApprovedAt.Equal(testutil.Epoch))

	require.NoError(t, db.Model(&models.Event{}).Where("id = ?", event.ID).Update("status", models.EventInProgress).Error)
	_, err = svc.Create(ctx, manager.ID, CreateEnrollmentRequest{EventID: event.ID, ClubID: other.ID})
	require.ErrorIs(t, err, apperr.ErrConflict)

	ok, err := refcheck.New(db).ApprovedEnrollment(ctx, event.ID, club.ID)
	require.NoError(t, err)
	require.True(t, ok)
}
