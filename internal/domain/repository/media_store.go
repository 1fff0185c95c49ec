package repository

import (
	"context"
	"io"
)

// MediaStore persists photo bytes under an opaque filename. Filenames are
// resolved to URLs only by clients, against the configured media base URL.
type MediaStore interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) error
}
