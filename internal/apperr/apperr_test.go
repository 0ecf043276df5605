package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestKindsMapToStatus(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{NotFound("club", 7), http.StatusNotFound},
		{Conflict("club %q already exists", "Winners"), http.StatusConflict},
		{Forbidden("missing role"), http.StatusForbidden},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Validation("reason", "reason is required"), http.StatusBadRequest},
		{Storage(errors.New("disk full"), "upload failed"), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.code, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestNotFoundNamesEntityAndID(t *testing.T) {
	err := NotFound("athlete", 42)
	require.EqualError(t, err, "athlete with id 42 not found")
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrConflict)
}

func TestWrappedKindSurvivesFmtWrap(t *testing.T) {
	err := fmt.Errorf("approve transfer: %w", Conflict("transition not permitted"))
	require.ErrorIs(t, err, ErrConflict)
	require.Equal(t, http.StatusConflict, HTTPStatus(err))
	require.True(t, IsKnown(err))
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("bucket unavailable")
	err := Storage(cause, "uploading %s", "photo")
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, cause)
}

func TestFromDBTranslatesDuplicates(t *testing.T) {
	err := FromDB(gorm.ErrDuplicatedKey, "club %q already exists", "Winners")
	require.ErrorIs(t, err, ErrConflict)
	require.EqualError(t, err, `club "Winners" already exists`)

	other := errors.New("connection reset")
	require.Equal(t, other, FromDB(other, "ignored"))
	require.NoError(t, FromDB(nil, "ignored"))
}
