package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/pammu-27/sparsha-backend/internal/storage"
)

const (
	KeyPrefix    = "gallery"
	CacheControl = "max-age=3600"
)

// UploadInput is one uploaded file plus its optional form metadata.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
	Alt         *string
	Tags        *string
}

// Service stores blobs and keeps the gallery catalog in the database.
type Service struct {
	repo     Repository
	store    storage.Store
	maxBytes int64
	now      func() time.Time
}

func NewService(repo Repository, store storage.Store, maxBytes int64) *Service {
	return &Service{repo: repo, store: store, maxBytes: maxBytes, now: time.Now}
}

// Upload writes the blob first and records it only after the write succeeded.
// If the record cannot be created the blob is removed again.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*Media, error) {
	if s.maxBytes > 0 && in.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	contentType, err := detectContentType(in.ContentType, in.Body)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	key := storage.NewKey(KeyPrefix, in.Filename, s.now())
	err = s.store.Put(ctx, storage.Object{
		Key:          key,
		ContentType:  contentType,
		Size:         in.Size,
		CacheControl: CacheControl,
		Body:         in.Body,
	})
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	tags := []string{}
	if in.Tags != nil {
		tags = SplitTags(*in.Tags)
	}

	m := &Media{
		Filename:   in.Filename,
		URL:        s.store.URL(key),
		StorageKey: key,
		Alt:        in.Alt,
		Tags:       tags,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		s.removeBlob(context.WithoutCancel(ctx), key)
		return nil, fmt.Errorf("failed to save media record: %w", err)
	}

	slog.Info("media uploaded", "id", m.ID, "key", key, "backend", s.store.Kind(), "size", in.Size)
	return m, nil
}

func (s *Service) List(ctx context.Context) ([]Media, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateMediaRequest) (*Media, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Alt != nil {
		m.Alt = req.Alt
	}
	m.Tags = []string(req.Tags)
	if m.Tags == nil {
		m.Tags = []string{}
	}

	if err := s.repo.UpdateMeta(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the catalog entry, then the blob. A failed blob delete is
// logged and does not fail the request.
func (s *Service) Delete(ctx context.Context, id int64) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if m.StorageKey != "" {
		s.removeBlob(ctx, m.StorageKey)
	}
	return nil
}

func (s *Service) removeBlob(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		slog.Error("failed to remove blob", "key", key, "backend", s.store.Kind(), "error", err)
	}
}

// detectContentType keeps the declared type unless it is missing or generic,
// in which case the content is sniffed and the reader rewound.
func detectContentType(declared string, body io.ReadSeeker) (string, error) {
	if declared != "" && declared != "application/octet-stream" {
		return declared, nil
	}
	mtype, err := mimetype.DetectReader(body)
	if err != nil {
		return "", err
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mtype.String(), nil
}
