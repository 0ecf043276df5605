// Package storage holds the object storage used for club logos, athlete
// photos and athlete documents.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
)

var ErrUnknownObject = errors.New("object url does not belong to this store")

// ObjectStore accepts a blob with a folder hint and returns a durable URL.
type ObjectStore interface {
	Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error)
	Delete(ctx context.Context, url string) error
}

// LocalStore keeps objects on the local disk under the upload directory,
// served by the router's /public static mount.
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", root, err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload streams r into <root>/<folder>/<uuid><ext> through a temp file and
// an atomic rename.
func (s *LocalStore) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	folder, err := cleanFolder(folder)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(s.root, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create folder %s: %w", folder, err)
	}

	name := objectName(filename)
	fullPath := filepath.Join(dir, name)
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close object: %w", err)
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("rename object: %w", err)
	}

	return s.baseURL + "/" + path.Join(folder, name), nil
}

// Delete removes the object behind url. Missing files are not an error.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return ErrUnknownObject
	}
	rel = path.Clean(rel)
	if strings.HasPrefix(rel, "..") {
		return ErrUnknownObject
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete object %s: %w", rel, err)
	}
	return nil
}

func cleanFolder(folder string) (string, error) {
	folder = path.Clean("/" + strings.TrimSpace(folder))
	folder = strings.TrimPrefix(folder, "/")
	if folder == "" || folder == "." {
		return "", errors.New("folder is required")
	}
	return folder, nil
}

func objectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 {
		ext = ""
	}
	return uuid.NewString() + ext
}

// MemoryStore is an in-process ObjectStore for tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string

	// FailUploads makes every Upload return the given error.
	FailUploads error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (m *MemoryStore) Upload(_ context.Context, r io.Reader, filename, folder string) (string, error) {
	if m.FailUploads != nil {
		return "", m.FailUploads
	}
	folder, err := cleanFolder(folder)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	url := "mem://" + path.Join(folder, objectName(filename))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[url] = data
	return url, nil
}

func (m *MemoryStore) Delete(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, url)
	m.deleted = append(m.deleted, url)
	return nil
}

// Has reports whether url is currently stored.
func (m *MemoryStore) Has(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[url]
	return ok
}

// Len returns the number of stored objects.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// Deleted returns the urls passed to Delete so far.
func (m *MemoryStore) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

// File is an upload received from a client.
type File struct {
	Name string
	Body io.Reader
}

// Put uploads f and wraps any failure as a storage error.
func Put(ctx context.Context, store ObjectStore, f *File, folder string) (string, error) {
	url, err := store.Upload(ctx, f.Body, f.Name, folder)
	if err != nil {
		return "", apperr.Storage(err, "upload of %s to %s failed", f.Name, folder)
	}
	return url, nil
}

// DeleteAsync removes the objects in the background. Failures are only
// logged; the request that replaced them has already succeeded.
func DeleteAsync(ctx context.Context, store ObjectStore, urls ...string) {
	ctx = context.WithoutCancel(ctx)
	log := logging.FromContext(ctx)
	for _, url := range urls {
		if url == "" {
			continue
		}
		go func(url string) {
			if err := store.Delete(ctx, url); err != nil {
				log.Warn("delete of replaced object failed", "url", url, "error", err)
			}
		}(url)
	}
}
