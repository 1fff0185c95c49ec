package application

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wanderstay/wanderstay/internal/domain/repository"
)

// ErrFetchFailed is returned when a remote photo cannot be downloaded.
var ErrFetchFailed = errors.New("image fetch failed")

// MediaService ingests photos into the configured store. Filenames it returns
// are opaque; clients resolve them against the media base URL.
type MediaService struct {
	Store    repository.MediaStore
	HTTP     *http.Client
	Logger   *logrus.Logger
	MaxFiles int
}

func NewMediaService(store repository.MediaStore, logger *logrus.Logger, maxFiles int) *MediaService {
	return &MediaService{
		Store:    store,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
		Logger:   logger,
		MaxFiles: maxFiles,
	}
}

// IngestUpload stores each uploaded file under a fresh name that keeps the
// original extension and returns the resulting filenames. At most MaxFiles
// files are accepted per call.
func (s *MediaService) IngestUpload(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > s.MaxFiles {
		files = files[:s.MaxFiles]
	}
	names := make([]string, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return nil, err
		}
		name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
		err = s.Store.Save(ctx, name, fh.Header.Get("Content-Type"), src)
		_ = src.Close()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// IngestByLink fetches a remote image synchronously into the store under a
// timestamp-derived name.
func (s *MediaService) IngestByLink(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", ErrFetchFailed
	}
	res, err := s.HTTP.Do(req)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("link", link).Warn("photo fetch failed")
		}
		return "", ErrFetchFailed
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return "", ErrFetchFailed
	}

	name := fmt.Sprintf("photo%d.jpeg", time.Now().UnixMilli())
	if err := s.Store.Save(ctx, name, res.Header.Get("Content-Type"), res.Body); err != nil {
		return "", err
	}
	return name, nil
}
