package club

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
	"github.com/DhavalSuthar-24/clubhub/pkg/storage"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGetSurfacesStoreFailure(t *testing.T) {
	db, mock := mockDB(t)
	svc := NewService(NewClubRepository(db), refcheck.New(db), testutil.NewClock(), storage.NewMemoryStore())

	mock.ExpectQuery(`SELECT \* FROM "clubs"`).WillReturnError(errors.New("connection reset by peer"))

	_, err := svc.Get(context.Background(), 1)
	require.Error(t, err)
	require.NotErrorIs(t, err, apperr.ErrNotFound)
	require.Equal(t, 500, apperr.HTTPStatus(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMissingRowIsNotFound(t *testing.T) {
	db, mock := mockDB(t)
	svc := NewService(NewClubRepository(db), refcheck.New(db), testutil.NewClock(), storage.NewMemoryStore())

	mock.ExpectQuery(`SELECT \* FROM "clubs"`).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.EqualError(t, err, "club with id 42 not found")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBuildsFilteredQuery(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewClubRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "clubs" WHERE status = \$1 AND LOWER\(name\) LIKE \$2`).
		WithArgs("active", "%win%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "clubs" WHERE status = \$1 AND LOWER\(name\) LIKE \$2 ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status"}).AddRow(3, "Winners", "active"))

	clubs, total, err := repo.List(context.Background(), Filter{Name: "Win"}, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, clubs, 1)
	require.Equal(t, "Winners", clubs[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
