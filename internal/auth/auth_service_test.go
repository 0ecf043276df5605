package auth

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/token"
	hash "github.com/DhavalSuthar-24/clubhub/utils"
)

type sentLink struct {
	email, link string
	expires     time.Time
}

type recordingNotifier struct {
	sent []sentLink
}

func (r *recordingNotifier) SendPasswordReset(_ context.Context, email, link string, expires time.Time) error {
	r.sent = append(r.sent, sentLink{email, link, expires})
	return nil
}

type fixture struct {
	svc      *Service
	clock    *clock.Fixed
	notifier *recordingNotifier
	roles    map[string]models.Role
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	roles := testutil.SeedRBAC(t, db)
	clk := testutil.NewClock()
	n := &recordingNotifier{}
	svc := NewService(NewAuthRepository(db), clk, n, Options{
		JWTSecret:   testutil.JWTSecret,
		TokenExpiry: time.Hour,
		FrontendURL: "http://localhost:3000",
	})
	return fixture{svc: svc, clock: clk, notifier: n, roles: roles}
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.svc.Register(ctx, RegisterRequest{Username: "jdoe", Email: "JDoe@Example.com", Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, "jdoe@example.com", u.Email)
	require.Equal(t, models.RoleUser, u.Role.Name)
	require.NotEqual(t, "password123", u.Password)
	require.True(t, hash.CheckPassword(u.Password, "password123"))

	_, err = f.svc.Register(ctx, RegisterRequest{Username: "other", Email: "jdoe@example.com", Password: "password123"})
	require.ErrorIs(t, err, apperr.ErrConflict)

	_, err = f.svc.Register(ctx, RegisterRequest{Username: "jdoe", Email: "new@example.com", Password: "password123"})
	require.ErrorIs(t, err, apperr.ErrConflict)

	missing := uint(999)
	_, err = f.svc.Register(ctx, RegisterRequest{Username: "x1", Email: "x1@example.com", Password: "password123", RoleID: &missing})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.EqualError(t, err, "role with id 999 not found")

	refRole := f.roles[models.RoleReferee].ID
	ref, err := f.svc.Register(ctx, RegisterRequest{Username: "ref", Email: "ref@example.com", Password: "password123", RoleID: &refRole})
	require.NoError(t, err)
	require.Equal(t, models.RoleReferee, ref.Role.Name)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	organizer := f.roles[models.RoleOrganizer].ID
	_, err := f.svc.Register(ctx, RegisterRequest{Username: "org", Email: "org@example.com", Password: "password123", RoleID: &organizer})
	require.NoError(t, err)

	_, err = f.svc.Authenticate(ctx, "org@example.com", "wrong-password")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
	_, err = f.svc.Authenticate(ctx, "nobody@example.com", "password123")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)

	// token validation runs against the wall clock
	f.clock.Set(time.Now())
	res, err := f.svc.Authenticate(ctx, "org@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, models.RoleOrganizer, res.User.Role.Name)

	claims, err := token.ValidateJWT(res.AccessToken, testutil.JWTSecret)
	require.NoError(t, err)
	require.Equal(t, models.RoleOrganizer, claims.Role.Name)
	require.Equal(t, res.User.ID, claims.UserID)
	require.ElementsMatch(t, []string{"READ", "WRITE", "UPDATE", "DELETE"}, claims.Permissions)
	require.ElementsMatch(t, []string{"READ", "WRITE", "UPDATE", "DELETE"}, res.User.Permissions)
}

func TestPasswordResetFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Register(ctx, RegisterRequest{Username: "jdoe", Email: "jdoe@example.com", Password: "password123"})
	require.NoError(t, err)

	require.ErrorIs(t, f.svc.RequestPasswordReset(ctx, "ghost@example.com"), apperr.ErrNotFound)

	require.NoError(t, f.svc.RequestPasswordReset(ctx, "jdoe@example.com"))
	require.Len(t, f.notifier.sent, 1)
	sent := f.notifier.sent[0]
	require.Equal(t, testutil.Epoch.Add(time.Hour), sent.expires)
	require.True(t, strings.HasPrefix(sent.link, "http://localhost:3000/reset-password?"))
	parsed, err := url.Parse(sent.link)
	require.NoError(t, err)
	tok := parsed.Query().Get("token")
	require.Len(t, tok, 40)

	res, err := f.svc.ResetPassword(ctx, ResetPasswordRequest{Email: "jdoe@example.com"})
	require.NoError(t, err)
	require.False(t, res.Success)

	res, err = f.svc.ResetPassword(ctx, ResetPasswordRequest{Email: "ghost@example.com", Token: tok, NewPassword: "newpassword1"})
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, "user not found", res.Message)

	res, err = f.svc.ResetPassword(ctx, ResetPasswordRequest{Email: "jdoe@example.com", Token: "bogus", NewPassword: "newpassword1"})
	require.NoError(t, err)
	require.Equal(t, "invalid token", res.Message)

	f.clock.Advance(2 * time.Hour)
	res, err = f.svc.ResetPassword(ctx, ResetPasswordRequest{Email: "jdoe@example.com", Token: tok, NewPassword: "newpassword1"})
	require.NoError(t, err)
	require.Equal(t, "token expired", res.Message)

	f.clock.Set(testutil.Epoch)
	res, err = f.svc.ResetPassword(ctx, ResetPasswordRequest{Email: "jdoe@example.com", Token: tok, NewPassword: "newpassword1"})
	require.NoError(t, err)
	require.True(t, res.Success)

	_, err = f.svc.Authenticate(ctx, "jdoe@example.com", "newpassword1")
	require.NoError(t, err)

	// the token is single use
	res, err = f.svc.ResetPassword(ctx, ResetPasswordRequest{Email: "jdoe@example.com", Token: tok, NewPassword: "another-pass"})
	require.NoError(t, err)
	require.False(t, res.Success)
}
