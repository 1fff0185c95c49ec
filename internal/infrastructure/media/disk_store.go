package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wanderstay/wanderstay/internal/domain/repository"
)

// DiskStore writes photos under a local directory that the server exposes as
// static files. Writes are synchronous relative to the request.
type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{Dir: dir}, nil
}

func (s *DiskStore) Save(_ context.Context, filename, _ string, r io.Reader) error {
	// filepath.Base guards against traversal in caller-derived names.
	dst := filepath.Join(s.Dir, filepath.Base(filename))
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return err
	}
	return f.Close()
}

var _ repository.MediaStore = (*DiskStore)(nil)
