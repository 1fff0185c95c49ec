package media

import (
	"context"
	"io"
	"path"

	"cloud.google.com/go/storage"

	"github.com/wanderstay/wanderstay/internal/domain/repository"
	"github.com/wanderstay/wanderstay/pkg/helpers"
)

// GCSStore stores photos as objects in a Google Cloud Storage bucket. The
// media base URL then points at the bucket's public endpoint.
type GCSStore struct {
	Client *storage.Client
	Bucket string
	Prefix string
}

func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{Client: client, Bucket: bucket, Prefix: "photos"}
}

func (s *GCSStore) Save(ctx context.Context, filename, contentType string, r io.Reader) error {
	return helpers.UploadObject(ctx, s.Client, s.Bucket, path.Join(s.Prefix, filename), contentType, r)
}

var _ repository.MediaStore = (*GCSStore)(nil)
