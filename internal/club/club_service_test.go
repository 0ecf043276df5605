package club

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/clubhub/pkg/storage"
	"github.com/DhavalSuthar-24/clubhub/pkg/validator"
)

type fixture struct {
	db      *gorm.DB
	svc     *Service
	store   *storage.MemoryStore
	manager models.User
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.SeedRBAC(t, db)
	store := storage.NewMemoryStore()
	return fixture{
		db:      db,
		svc:     NewService(NewClubRepository(db), refcheck.New(db), testutil.NewClock(), store),
		store:   store,
		manager: testutil.CreateUser(t, db, "manager", models.RoleClubManager),
	}
}

func winners(responsibleID uint) CreateClubRequest {
	return CreateClubRequest{
		Name:          "Winners",
		FoundedAt:     "1985-01-22",
		Branch:        "senior",
		Category:      "female",
		Address:       "calle 1 #03",
		Phone:         "3008213278",
		Email:         "Winners@Clubs.test",
		ResponsibleID: responsibleID,
	}
}

func TestCreateClub(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	club, err := f.svc.Create(ctx, winners(f.manager.ID), nil)
	require.NoError(t, err)
	require.Equal(t, models.StatusActive, club.Status)
	require.Equal(t, "winners@clubs.test", club.Email)
	require.Equal(t, 1985, club.FoundedAt.Year())

	_, err = f.svc.Create(ctx, winners(f.manager.ID), nil)
	require.ErrorIs(t, err, apperr.ErrConflict)

	other := winners(999)
	other.Name = "Losers"
	_, err = f.svc.Create(ctx, other, nil)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.EqualError(t, err, "responsible user with id 999 not found")

	bad := winners(f.manager.ID)
	bad.Name = "Dated"
	bad.FoundedAt = "22/01/1985"
	_, err = f.svc.Create(ctx, bad, nil)
	require.ErrorIs(t, err, apperr.ErrValidation)

	// an inactive club frees its name
	require.NoError(t, f.svc.Delete(ctx, club.ID))
	again, err := f.svc.Create(ctx, winners(f.manager.ID), nil)
	require.NoError(t, err)
	require.NotEqual(t, club.ID, again.ID)
}

func TestCreateClubWithLogo(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	club, err := f.svc.Create(ctx, winners(f.manager.ID), &storage.File{Name: "logo.PNG", Body: strings.NewReader("png")})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(club.Logo, "mem://clubs/"))
	require.True(t, f.store.Has(club.Logo))

	f.store.FailUploads = errors.New("bucket down")
	req := winners(f.manager.ID)
	req.Name = "Unlucky"
	_, err = f.svc.Create(ctx, req, &storage.File{Name: "logo.png", Body: strings.NewReader("png")})
	require.ErrorIs(t, err, apperr.ErrStorage)

	var n int64
	require.NoError(t, f.db.Model(&models.Club{}).Where("name = ?", "Unlucky").Count(&n).Error)
	require.Zero(t, n)
}

func TestUpdateClub(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	club, err := f.svc.Create(ctx, winners(f.manager.ID), &storage.File{Name: "old.png", Body: strings.NewReader("old")})
	require.NoError(t, err)
	rival := testutil.CreateClub(t, f.db, "Rivals", f.manager.ID)

	taken := "Winners"
	_, err = f.svc.Update(ctx, rival.ID, UpdateClubRequest{Name: &taken}, nil)
	require.ErrorIs(t, err, apperr.ErrConflict)

	ghost := uint(404)
	_, err = f.svc.Update(ctx, club.ID, UpdateClubRequest{ResponsibleID: &ghost}, nil)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	// keeping its own name is fine
	phone := "3110000000"
	oldLogo := club.Logo
	updated, err := f.svc.Update(ctx, club.ID, UpdateClubRequest{Name: &taken, Phone: &phone}, &storage.File{Name: "new.png", Body: strings.NewReader("new")})
	require.NoError(t, err)
	require.Equal(t, "3110000000", updated.Phone)
	require.NotEqual(t, oldLogo, updated.Logo)
	require.True(t, f.store.Has(updated.Logo))
	require.Eventually(t, func() bool { return !f.store.Has(oldLogo) }, time.Second, 5*time.Millisecond)

	_, err = f.svc.Update(ctx, 9999, UpdateClubRequest{Phone: &phone}, nil)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListClubs(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	other := testutil.CreateUser(t, f.db, "other", models.RoleClubManager)

	testutil.CreateClub(t, f.db, "Winners", f.manager.ID)
	testutil.CreateClub(t, f.db, "Winter Sharks", other.ID)
	gone := testutil.CreateClub(t, f.db, "Old Winners", f.manager.ID)
	require.NoError(t, f.svc.Delete(ctx, gone.ID))

	clubs, total, err := f.svc.List(ctx, Filter{}, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, clubs, 2)

	_, total, err = f.svc.List(ctx, Filter{IncludeInactive: true}, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)

	clubs, _, err = f.svc.List(ctx, Filter{Name: "WINN", IncludeInactive: true}, 1, 20)
	require.NoError(t, err)
	require.Len(t, clubs, 2)

	rid := other.ID
	clubs, _, err = f.svc.List(ctx, Filter{ResponsibleID: &rid}, 1, 20)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	require.Equal(t, "Winter Sharks", clubs[0].Name)

	// inactive clubs are still readable by id
	got, err := f.svc.Get(ctx, gone.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusInactive, got.Status)
}

func TestAssignAthlete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	club := testutil.CreateClub(t, f.db, "Winners", f.manager.ID)
	athlete := testutil.CreateAthlete(t, f.db, "1001")

	ca, err := f.svc.AssignAthlete(ctx, club.ID, AssignAthleteRequest{AthleteID: athlete.ID})
	require.NoError(t, err)
	require.Equal(t, models.StatusActive, ca.Status)
	require.True(t, ca.JoinedAt.Equal(testutil.Epoch))

	_, err = f.svc.AssignAthlete(ctx, club.ID, AssignAthleteRequest{AthleteID: athlete.ID})
	require.ErrorIs(t, err, apperr.ErrConflict)

	_, err = f.svc.AssignAthlete(ctx, club.ID, AssignAthleteRequest{AthleteID: 77})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = f.svc.AssignAthlete(ctx, 77, AssignAthleteRequest{AthleteID: athlete.ID})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	second := testutil.CreateAthlete(t, f.db, "1002")
	joined := "2024-08-01"
	ca, err = f.svc.AssignAthlete(ctx, club.ID, AssignAthleteRequest{AthleteID: second.ID, JoinedAt: &joined})
	require.NoError(t, err)
	require.Equal(t, time.August, ca.JoinedAt.Month())

	members, err := f.svc.Athletes(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.NotNil(t, members[0].Athlete)
	require.Equal(t, "1002", members[0].Athlete.DocumentNumber)
}

func TestClubTransfersAndMatches(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	home := testutil.CreateClub(t, f.db, "Home", f.manager.ID)
	away := testutil.CreateClub(t, f.db, "Away", f.manager.ID)
	bystander := testutil.CreateClub(t, f.db, "Bystander", f.manager.ID)
	organizer := testutil.CreateUser(t, f.db, "org", models.RoleOrganizer)
	event := testutil.CreateEvent(t, f.db, organizer.ID, "Coliseo", testutil.Epoch)

	testutil.CreateMatch(t, f.db, event.ID, home.ID, away.ID, testutil.Epoch.Add(48*time.Hour), models.MatchScheduled)
	testutil.CreateMatch(t, f.db, event.ID, away.ID, home.ID, testutil.Epoch.Add(24*time.Hour), models.MatchScheduled)

	athlete := testutil.CreateAthlete(t, f.db, "2001")
	require.NoError(t, f.db.Create(&models.Transfer{
		AthleteID: athlete.ID, FromClubID: away.ID, ToClubID: home.ID,
		TransferDate: testutil.Epoch, Status: models.ApprovalPending, RegisteredByID: f.manager.ID,
	}).Error)

	matches, err := f.svc.Matches(ctx, home.ID)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.True(t, matches[0].ScheduledAt.Before(matches[1].ScheduledAt))

	matches, err = f.svc.Matches(ctx, bystander.ID)
	require.NoError(t, err)
	require.Empty(t, matches)

	transfers, err := f.svc.Transfers(ctx, away.ID)
	require.NoError(t, err)
	require.Len(t, transfers, 1)

	_, err = f.svc.Transfers(ctx, 555)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateClubMultipart(t *testing.T) {
	f := setup(t)
	gin.SetMode(gin.TestMode)
	require.NoError(t, validator.Register())

	table := rmiddleware.NewTable()
	r := gin.New()
	api := r.Group("/api")
	api.Use(testutil.WithPrincipal(testutil.Principal(t, f.db, f.manager)), rmiddleware.Gate(table))
	RegisterRoutes(api, table, f.svc)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"name":           "Winners",
		"founded_at":     "1985-01-22",
		"branch":         "senior",
		"category":       "female",
		"address":        "calle 1 #03",
		"phone":          "3008213278",
		"email":          "winners@clubs.test",
		"responsible_id": strconv.FormatUint(uint64(f.manager.ID), 10),
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/clubs", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var club models.Club
	testutil.Decode(t, w, &club)
	require.Equal(t, "Winners", club.Name)
	require.True(t, strings.HasPrefix(club.Logo, "mem://clubs/"))
	require.Equal(t, 1, f.store.Len())

	// the same name again is a conflict
	w = testutil.Do(t, r, http.MethodPost, "/api/clubs", winners(f.manager.ID), "")
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// a user role may read but not create
	user := testutil.CreateUser(t, f.db, "fan", models.RoleUser)
	table2 := rmiddleware.NewTable()
	r2 := gin.New()
	api2 := r2.Group("/api")
	api2.Use(testutil.WithPrincipal(testutil.Principal(t, f.db, user)), rmiddleware.Gate(table2))
	RegisterRoutes(api2, table2, f.svc)
	w = testutil.Do(t, r2, http.MethodGet, "/api/clubs", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = testutil.Do(t, r2, http.MethodPost, "/api/clubs", winners(user.ID), "")
	require.Equal(t, http.StatusForbidden, w.Code)
}
