package statistic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
)

// twoMatches creates an event with two finished matches.
func twoMatches(t *testing.T, db *gorm.DB) (models.Match, models.Match) {
	t.Helper()
	testutil.SeedRBAC(t, db)
	manager := testutil.CreateUser(t, db, "manager", models.RoleClubManager)
	organizer := testutil.CreateUser(t, db, "organizer", models.RoleOrganizer)
	home := testutil.CreateClub(t, db, "Home", manager.ID)
	away := testutil.CreateClub(t, db, "Away", manager.ID)
	event := testutil.CreateEvent(t, db, organizer.ID, "Coliseo", testutil.Epoch)
	m1 := testutil.CreateMatch(t, db, event.ID, home.ID, away.ID, testutil.Epoch, models.MatchFinished)
	m2 := testutil.CreateMatch(t, db, event.ID, away.ID, home.ID, testutil.Epoch.AddDate(0, 0, 1), models.MatchFinished)
	return m1, m2
}

func TestCreateStatistic(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(NewStatisticRepository(db), refcheck.New(db))
	ctx := context.Background()
	m1, _ := twoMatches(t, db)
	athlete := testutil.CreateAthlete(t, db, "4001")

	_, err := svc.Create(ctx, CreateStatisticRequest{MatchID: m1.ID, AthleteID: athlete.ID, Serves: -1})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(ctx, CreateStatisticRequest{MatchID: 999, AthleteID: athlete.ID})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.Create(ctx, CreateStatisticRequest{MatchID: m1.ID, AthleteID: 999})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	stat, err := svc.Create(ctx, CreateStatisticRequest{MatchID: m1.ID, AthleteID: athlete.ID, Serves: 4, Points: 9})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateStatisticRequest{MatchID: m1.ID, AthleteID: athlete.ID, Serves: 1})
	require.ErrorIs(t, err, apperr.ErrConflict)

	neg := -3
	_, err = svc.Update(ctx, stat.ID, UpdateStatisticRequest{Blocks: &neg})
	require.ErrorIs(t, err, apperr.ErrValidation)

	five := 5
	stat, err = svc.Update(ctx, stat.ID, UpdateStatisticRequest{Blocks: &five})
	require.NoError(t, err)
	require.Equal(t, 5, stat.Blocks)
	require.Equal(t, 4, stat.Serves)

	rows, err := svc.ForMatch(ctx, m1.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Athlete)

	require.NoError(t, svc.Delete(ctx, stat.ID))
	_, err = svc.Get(ctx, stat.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSummarize(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(NewStatisticRepository(db), refcheck.New(db))
	ctx := context.Background()
	m1, m2 := twoMatches(t, db)
	athlete := testutil.CreateAthlete(t, db, "4002")
	idle := testutil.CreateAthlete(t, db, "4003")

	_, err := svc.Create(ctx, CreateStatisticRequest{MatchID: m1.ID, AthleteID: athlete.ID, Serves: 3, Attacks: 10, Blocks: 2, Defenses: 5, Points: 12, Errors: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateStatisticRequest{MatchID: m2.ID, AthleteID: athlete.ID, Serves: 2, Attacks: 7, Blocks: 1, Defenses: 4, Points: 8, Errors: 3})
	require.NoError(t, err)

	sum, err := svc.Summarize(ctx, athlete.ID)
	require.NoError(t, err)
	require.Equal(t, Summary{
		AthleteID: athlete.ID, Serves: 5, Attacks: 17, Blocks: 3, Defenses: 9, Points: 20, Errors: 4, MatchesPlayed: 2,
	}, *sum)

	empty, err := svc.Summarize(ctx, idle.ID)
	require.NoError(t, err)
	require.Equal(t, Summary{AthleteID: idle.ID}, *empty)

	_, err = svc.Summarize(ctx, 12345)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
