package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
)

func TestPermissionLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedRBAC(t, db)
	svc := NewService(NewPermissionRepository(db))
	ctx := context.Background()

	p, err := svc.Create(ctx, PermissionRequest{Name: " export "})
	require.NoError(t, err)
	require.Equal(t, "EXPORT", p.Name)

	_, err = svc.Create(ctx, PermissionRequest{Name: "read"})
	require.ErrorIs(t, err, apperr.ErrConflict)

	_, err = svc.Update(ctx, p.ID, PermissionRequest{Name: "WRITE"})
	require.ErrorIs(t, err, apperr.ErrConflict)

	p, err = svc.Update(ctx, p.ID, PermissionRequest{Name: "export"})
	require.NoError(t, err)
	require.Equal(t, "EXPORT", p.Name)

	require.NoError(t, svc.Delete(ctx, p.ID))

	var read models.Permission
	require.NoError(t, db.Where("name = ?", models.PermRead).First(&read).Error)
	require.ErrorIs(t, svc.Delete(ctx, read.ID), apperr.ErrConflict)
	require.ErrorIs(t, svc.Delete(ctx, 999), apperr.ErrNotFound)
}
