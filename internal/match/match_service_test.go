package match

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/statistic"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/clubhub/pkg/validator"
)

type fixture struct {
	db        *gorm.DB
	svc       *Service
	clock     *clock.Fixed
	organizer models.User
	referee   models.User
	event     models.Event
	home      models.Club
	away      models.Club
	// outsider has only a pending enrollment
	outsider models.Club
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.SeedRBAC(t, db)
	clk := testutil.NewClock()

	organizer := testutil.CreateUser(t, db, "organizer", models.RoleOrganizer)
	manager := testutil.CreateUser(t, db, "manager", models.RoleClubManager)
	referee := testutil.CreateUser(t, db, "referee", models.RoleReferee)
	event := testutil.CreateEvent(t, db, organizer.ID, "Coliseo", testutil.Epoch)
	home := testutil.CreateClub(t, db, "Halcones", manager.ID)
	away := testutil.CreateClub(t, db, "Condores", manager.ID)
	outsider := testutil.CreateClub(t, db, "Pumas", manager.ID)
	testutil.Enroll(t, db, event.ID, home.ID, manager.ID, models.ApprovalApproved)
	testutil.Enroll(t, db, event.ID, away.ID, manager.ID, models.ApprovalApproved)
	testutil.Enroll(t, db, event.ID, outsider.ID, manager.ID, models.ApprovalPending)

	return fixture{
		db:        db,
		svc:       NewService(NewMatchRepository(db), refcheck.New(db), clk),
		clock:     clk,
		organizer: organizer,
		referee:   referee,
		event:     event,
		home:      home,
		away:      away,
		outsider:  outsider,
	}
}

func (f fixture) request(at time.Time) CreateMatchRequest {
	return CreateMatchRequest{
		EventID:     f.event.ID,
		HomeClubID:  f.home.ID,
		AwayClubID:  f.away.ID,
		ScheduledAt: at.Format(time.RFC3339),
		Location:    "Coliseo",
	}
}

func TestCreateMatch(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	at := testutil.Epoch.Add(24 * time.Hour)

	req := f.request(at)
	req.MainRefereeID = &f.referee.ID
	m, err := f.svc.Create(ctx, req)
	require.NoError(t, err)
	require.Equal(t, models.MatchScheduled, m.Status)
	require.True(t, m.ScheduledAt.Equal(at))

	later := testutil.Epoch.Add(72 * time.Hour)

	same := f.request(later)
	same.AwayClubID = f.home.ID
	_, err = f.svc.Create(ctx, same)
	require.ErrorIs(t, err, apperr.ErrConflict)

	pending := f.request(later)
	pending.AwayClubID = f.outsider.ID
	_, err = f.svc.Create(ctx, pending)
	require.ErrorIs(t, err, apperr.ErrConflict)

	noEvent := f.request(later)
	noEvent.EventID = 999
	_, err = f.svc.Create(ctx, noEvent)
	require.EqualError(t, err, "event with id 999 not found")

	ghost := uint(900)
	noReferee := f.request(later)
	noReferee.AssistantRefereeID = &ghost
	_, err = f.svc.Create(ctx, noReferee)
	require.EqualError(t, err, "assistant referee with id 900 not found")

	noClub := f.request(later)
	noClub.HomeClubID = 404
	_, err = f.svc.Create(ctx, noClub)
	require.EqualError(t, err, "home club with id 404 not found")

	badTime := f.request(later)
	badTime.ScheduledAt = "tomorrow"
	_, err = f.svc.Create(ctx, badTime)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestMatchNeedsActiveClubs(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	m, err := f.svc.Create(ctx, f.request(testutil.Epoch.Add(24*time.Hour)))
	require.NoError(t, err)

	testutil.DeactivateClub(t, f.db, f.away.ID)

	_, err = f.svc.Create(ctx, f.request(testutil.Epoch.Add(72*time.Hour)))
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.EqualError(t, err, "away club "+strconv.Itoa(int(f.away.ID))+" is inactive")

	location := "Estadio Norte"
	_, err = f.svc.Update(ctx, m.ID, UpdateMatchRequest{Location: &location})
	require.ErrorIs(t, err, apperr.ErrConflict)

	got, err := f.svc.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "Coliseo", got.Location)
}

func TestMatchSlotWindow(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	base := testutil.Epoch.Add(24 * time.Hour)

	first, err := f.svc.Create(ctx, f.request(base))
	require.NoError(t, err)

	// 90 minutes apart at the same location clashes
	_, err = f.svc.Create(ctx, f.request(base.Add(90*time.Minute)))
	require.ErrorIs(t, err, apperr.ErrConflict)

	// 150 minutes apart does not
	_, err = f.svc.Create(ctx, f.request(base.Add(150*time.Minute)))
	require.NoError(t, err)

	elsewhere := f.request(base.Add(30 * time.Minute))
	elsewhere.Location = "Estadio"
	_, err = f.svc.Create(ctx, elsewhere)
	require.NoError(t, err)

	// a cancelled match frees its slot
	_, err = f.svc.Create(ctx, f.request(base.Add(-time.Hour)))
	require.ErrorIs(t, err, apperr.ErrConflict)
	_, err = f.svc.ChangeStatus(ctx, first.ID, models.MatchCancelled, "rain")
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.request(base.Add(-time.Hour)))
	require.NoError(t, err)
}

func TestUpdateMatch(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	base := testutil.Epoch.Add(24 * time.Hour)

	_, err := f.svc.Create(ctx, f.request(base))
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, f.request(base.Add(3*time.Hour)))
	require.NoError(t, err)

	clash := base.Add(time.Hour).Format(time.RFC3339)
	_, err = f.svc.Update(ctx, second.ID, UpdateMatchRequest{ScheduledAt: &clash})
	require.ErrorIs(t, err, apperr.ErrConflict)

	// nudging within its own window only compares against the others
	nudge := base.Add(3*time.Hour + 30*time.Minute).Format(time.RFC3339)
	updated, err := f.svc.Update(ctx, second.ID, UpdateMatchRequest{ScheduledAt: &nudge})
	require.NoError(t, err)
	require.True(t, updated.ScheduledAt.Equal(base.Add(3*time.Hour+30*time.Minute)))

	location := "Estadio"
	updated, err = f.svc.Update(ctx, second.ID, UpdateMatchRequest{ScheduledAt: &clash, Location: &location})
	require.NoError(t, err)
	require.Equal(t, "Estadio", updated.Location)
	require.Equal(t, "Halcones", updated.HomeClub.Name)

	_, err = f.svc.Update(ctx, second.ID, UpdateMatchRequest{AwayClubID: &f.outsider.ID})
	require.ErrorIs(t, err, apperr.ErrConflict)

	swapped, err := f.svc.Update(ctx, second.ID, UpdateMatchRequest{HomeClubID: &f.away.ID, AwayClubID: &f.home.ID})
	require.NoError(t, err)
	require.Equal(t, "Condores", swapped.HomeClub.Name)

	_, err = f.svc.ChangeStatus(ctx, second.ID, models.MatchInProgress, "")
	require.NoError(t, err)
	_, err = f.svc.Update(ctx, second.ID, UpdateMatchRequest{Location: &location})
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestMatchLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	m := testutil.CreateMatch(t, f.db, f.event.ID, f.home.ID, f.away.ID, testutil.Epoch, models.MatchScheduled)

	// the reason is checked before the match is even looked up
	_, err := f.svc.ChangeStatus(ctx, 999, models.MatchCancelled, "  ")
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.ChangeStatus(ctx, m.ID, models.MatchFinished, "")
	require.EqualError(t, err, "transition not permitted: from scheduled to finished")

	f.clock.Advance(time.Hour)
	got, err := f.svc.ChangeStatus(ctx, m.ID, models.MatchInProgress, "")
	require.NoError(t, err)
	require.True(t, got.StartedAt.Equal(testutil.Epoch.Add(time.Hour)))

	f.clock.Advance(90 * time.Minute)
	got, err = f.svc.ChangeStatus(ctx, m.ID, models.MatchFinished, "")
	require.NoError(t, err)
	require.True(t, got.EndedAt.Equal(testutil.Epoch.Add(150*time.Minute)))

	_, err = f.svc.ChangeStatus(ctx, m.ID, models.MatchCancelled, "too late")
	require.ErrorIs(t, err, apperr.ErrConflict)
	_, err = f.svc.UpdateCancellationReason(ctx, m.ID, "late")
	require.ErrorIs(t, err, apperr.ErrConflict)

	got, err = f.svc.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, models.MatchFinished, got.Status)
	require.Empty(t, got.CancellationReason)

	other := testutil.CreateMatch(t, f.db, f.event.ID, f.home.ID, f.away.ID, testutil.Epoch.Add(48*time.Hour), models.MatchScheduled)
	got, err = f.svc.ChangeStatus(ctx, other.ID, models.MatchCancelled, "flooded court")
	require.NoError(t, err)
	require.Equal(t, "flooded court", got.CancellationReason)

	got, err = f.svc.UpdateCancellationReason(ctx, other.ID, "roof leak")
	require.NoError(t, err)
	require.Equal(t, "roof leak", got.CancellationReason)
}

func TestListMatchesAndResult(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		testutil.CreateMatch(t, f.db, f.event.ID, f.home.ID, f.away.ID, testutil.Epoch.Add(time.Duration(i)*24*time.Hour), models.MatchScheduled)
	}
	done := testutil.CreateMatch(t, f.db, f.event.ID, f.home.ID, f.away.ID, testutil.Epoch.Add(-24*time.Hour), models.MatchFinished)

	from := testutil.Epoch.Add(12 * time.Hour)
	to := testutil.Epoch.Add(60 * time.Hour)
	matches, total, err := f.svc.List(ctx, Filter{From: &from, To: &to}, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.True(t, matches[0].ScheduledAt.Before(matches[1].ScheduledAt))

	_, total, err = f.svc.List(ctx, Filter{Status: "finished"}, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)

	_, _, err = f.svc.List(ctx, Filter{Status: "postponed"}, 1, 20)
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.Result(ctx, done.ID)
	require.EqualError(t, err, "match "+strconv.FormatUint(uint64(done.ID), 10)+" has no result")

	require.NoError(t, f.db.Create(&models.Result{MatchID: done.ID, HomeSets: 3, AwaySets: 2, RegisteredByID: f.referee.ID}).Error)
	r, err := f.svc.Result(ctx, done.ID)
	require.NoError(t, err)
	require.Equal(t, 2, r.AwaySets)
}

func TestMatchRoutes(t *testing.T) {
	f := setup(t)
	require.NoError(t, validator.Register())
	gin.SetMode(gin.TestMode)
	stats := statistic.NewService(statistic.NewStatisticRepository(f.db), refcheck.New(f.db))
	m := testutil.CreateMatch(t, f.db, f.event.ID, f.home.ID, f.away.ID, testutil.Epoch, models.MatchScheduled)
	path := "/api/matches/" + strconv.FormatUint(uint64(m.ID), 10)

	table := rmiddleware.NewTable()
	r := gin.New()
	api := r.Group("/api")
	api.Use(testutil.WithPrincipal(testutil.Principal(t, f.db, f.referee)), rmiddleware.Gate(table))
	RegisterRoutes(api, table, f.svc, stats)

	// referees run matches but do not schedule them
	w := testutil.Do(t, r, http.MethodPost, "/api/matches", f.request(testutil.Epoch.Add(time.Hour)), "")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Do(t, r, http.MethodPatch, path+"/status", gin.H{"status": "cancelled"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = testutil.Do(t, r, http.MethodPatch, path+"/status", gin.H{"status": "paused"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, r, http.MethodPatch, path+"/status", gin.H{"status": "in_progress"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var got models.Match
	testutil.Decode(t, w, &got)
	require.Equal(t, models.MatchInProgress, got.Status)

	w = testutil.Do(t, r, http.MethodPatch, path+"/status", gin.H{"status": "scheduled"}, "")
	require.Equal(t, http.StatusConflict, w.Code)

	w = testutil.Do(t, r, http.MethodGet, path+"/result", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.Do(t, r, http.MethodGet, path+"/statistics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/matches?from=yesterday", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/matches?status=in_progress", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
}
