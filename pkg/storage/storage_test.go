package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
)

func TestLocalStoreUploadAndDelete(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStore(root, "/public/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := s.Upload(ctx, strings.NewReader("png-bytes"), "Logo.PNG", "clubs")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/public/uploads/clubs/"))
	require.True(t, strings.HasSuffix(url, ".png"))

	onDisk := filepath.Join(root, "clubs", filepath.Base(url))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))

	require.NoError(t, s.Delete(ctx, url))
	_, err = os.Stat(onDisk)
	require.True(t, os.IsNotExist(err))

	// deleting twice is fine
	require.NoError(t, s.Delete(ctx, url))
}

func TestLocalStoreKeepsFoldersInsideRoot(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStore(root, "/files")
	require.NoError(t, err)

	url, err := s.Upload(context.Background(), strings.NewReader("x"), "a.pdf", "../../athletes/docs")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/files/athletes/docs/"))

	require.ErrorIs(t, s.Delete(context.Background(), "https://elsewhere/x.png"), ErrUnknownObject)
	require.ErrorIs(t, s.Delete(context.Background(), "/files/../../etc/passwd"), ErrUnknownObject)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	url, err := m.Upload(context.Background(), strings.NewReader("x"), "photo.jpg", "athletes")
	require.NoError(t, err)
	require.True(t, m.Has(url))

	require.NoError(t, m.Delete(context.Background(), url))
	require.False(t, m.Has(url))
	require.Equal(t, []string{url}, m.Deleted())

	m.FailUploads = errors.New("bucket unavailable")
	_, err = m.Upload(context.Background(), strings.NewReader("x"), "photo.jpg", "athletes")
	require.EqualError(t, err, "bucket unavailable")
}

func TestPutWrapsFailureAsStorageError(t *testing.T) {
	m := NewMemoryStore()
	m.FailUploads = errors.New("bucket unavailable")

	_, err := Put(context.Background(), m, &File{Name: "logo.png", Body: strings.NewReader("x")}, "clubs")
	require.ErrorIs(t, err, apperr.ErrStorage)
	require.Equal(t, 502, apperr.HTTPStatus(err))
}

func TestDeleteAsync(t *testing.T) {
	m := NewMemoryStore()
	url, err := Put(context.Background(), m, &File{Name: "a.png", Body: strings.NewReader("x")}, "clubs")
	require.NoError(t, err)

	DeleteAsync(context.Background(), m, url, "")
	require.Eventually(t, func() bool { return !m.Has(url) }, time.Second, 5*time.Millisecond)
}
