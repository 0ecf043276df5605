package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
)

func TestCreateAndUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	roles := testutil.SeedRBAC(t, db)
	svc := NewService(NewUserRepository(db), refcheck.New(db))
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateUserRequest{Username: "coach", Email: "Coach@Clubs.test", Password: "password123", RoleID: roles[models.RoleClubManager].ID})
	require.NoError(t, err)
	require.Equal(t, models.RoleClubManager, u.Role.Name)
	require.Equal(t, "coach@clubs.test", u.Email)

	_, err = svc.Create(ctx, CreateUserRequest{Username: "coach2", Email: "coach@clubs.test", Password: "password123", RoleID: roles[models.RoleUser].ID})
	require.ErrorIs(t, err, apperr.ErrConflict)

	_, err = svc.Create(ctx, CreateUserRequest{Username: "coach3", Email: "c3@clubs.test", Password: "password123", RoleID: 42})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	other := testutil.CreateUser(t, db, "other", models.RoleUser)
	taken := other.Email
	_, err = svc.Update(ctx, u.ID, UpdateUserRequest{Email: &taken})
	require.ErrorIs(t, err, apperr.ErrConflict)

	// keeping one's own email is not a clash
	own := u.Email
	newName := "head-coach"
	refRole := roles[models.RoleReferee].ID
	u, err = svc.Update(ctx, u.ID, UpdateUserRequest{Email: &own, Username: &newName, RoleID: &refRole})
	require.NoError(t, err)
	require.Equal(t, "head-coach", u.Username)
	require.Equal(t, models.RoleReferee, u.Role.Name)

	users, total, err := svc.ListByRole(ctx, refRole, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, u.ID, users[0].ID)
}

func TestChangePassword(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedRBAC(t, db)
	svc := NewService(NewUserRepository(db), refcheck.New(db))
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "owner", models.RoleUser)
	stranger := testutil.CreateUser(t, db, "stranger", models.RoleUser)
	admin := testutil.CreateUser(t, db, "root", models.RoleAdmin)

	err := svc.ChangePassword(ctx, testutil.Principal(t, db, stranger), owner.ID, ChangePasswordRequest{CurrentPassword: "password123", NewPassword: "newpassword1"})
	require.ErrorIs(t, err, apperr.ErrForbidden)

	err = svc.ChangePassword(ctx, testutil.Principal(t, db, owner), owner.ID, ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "newpassword1"})
	require.ErrorIs(t, err, apperr.ErrUnauthorized)

	require.NoError(t, svc.ChangePassword(ctx, testutil.Principal(t, db, owner), owner.ID, ChangePasswordRequest{CurrentPassword: "password123", NewPassword: "newpassword1"}))
	require.NoError(t, svc.ChangePassword(ctx, testutil.Principal(t, db, admin), owner.ID, ChangePasswordRequest{CurrentPassword: "newpassword1", NewPassword: "password123"}))
}

func TestDeleteRefusedWhileReferenced(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedRBAC(t, db)
	svc := NewService(NewUserRepository(db), refcheck.New(db))
	ctx := context.Background()

	manager := testutil.CreateUser(t, db, "manager", models.RoleClubManager)
	referee := testutil.CreateUser(t, db, "referee", models.RoleReferee)
	free := testutil.CreateUser(t, db, "free", models.RoleUser)

	testutil.CreateClub(t, db, "Winners", manager.ID)
	err := svc.Delete(ctx, manager.ID)
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.Contains(t, err.Error(), "responsible of a club")

	organizer := testutil.CreateUser(t, db, "organizer", models.RoleOrganizer)
	ev := testutil.CreateEvent(t, db, organizer.ID, "Coliseo", testutil.Epoch)
	home := testutil.CreateClub(t, db, "Home", manager.ID)
	away := testutil.CreateClub(t, db, "Away", manager.ID)
	m := testutil.CreateMatch(t, db, ev.ID, home.ID, away.ID, testutil.Epoch, models.MatchScheduled)
	require.NoError(t, db.Model(&m).Update("assistant_referee_id", referee.ID).Error)
	err = svc.Delete(ctx, referee.ID)
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.Contains(t, err.Error(), "referee of a match")

	require.NoError(t, svc.Delete(ctx, free.ID))
	require.ErrorIs(t, svc.Delete(ctx, free.ID), apperr.ErrNotFound)
}
