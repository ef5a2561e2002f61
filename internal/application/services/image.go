package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/domain"
	"github.com/google/uuid"
)

const (
	searchKindTag         = "tag"
	searchKindDescription = "desc"
	searchKindFileName    = "file"
)

type ImageService struct {
	index         application.ImageIndex
	storage       application.ObjectStorage
	pending       application.PendingDeletionQueue
	searchCache   application.ReadThroughCache[[]*domain.ImageDocument]
	presignExpiry time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

func NewImageService(
	index application.ImageIndex,
	storage application.ObjectStorage,
	pending application.PendingDeletionQueue,
	searchCache application.ReadThroughCache[[]*domain.ImageDocument],
	presignExpiry time.Duration,
	logger *slog.Logger,
) *ImageService {
	return &ImageService{
		index:         index,
		storage:       storage,
		pending:       pending,
		searchCache:   searchCache,
		presignExpiry: presignExpiry,
		logger:        logger,
		now:           time.Now,
	}
}

// Upload stores the file under a fresh object name and indexes it. When the
// index write fails the stored object is removed again.
func (s *ImageService) Upload(ctx context.Context, cmd UploadImageCommand) (*domain.ImageDocument, error) {
	id := uuid.New().String()
	objectName := id + strings.ToLower(filepath.Ext(cmd.FileName))

	doc, err := domain.NewImageDocument(
		id,
		filepath.Base(strings.TrimSpace(cmd.FileName)),
		objectName,
		"",
		cmd.ContentType,
		int64(len(cmd.Data)),
		cmd.Description,
		cmd.Tags,
		s.now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.storage.PutObject(ctx, objectName, cmd.ContentType, cmd.Data); err != nil {
		return nil, fmt.Errorf("store image %s: %w", objectName, err)
	}

	fileURL, err := s.storage.PresignGetURL(objectName, s.presignExpiry)
	if err != nil {
		s.discardObject(ctx, objectName, err)
		return nil, fmt.Errorf("presign image %s: %w", objectName, err)
	}
	doc.FileURL = fileURL

	if err := s.index.Save(ctx, doc); err != nil {
		s.discardObject(ctx, objectName, err)
		return nil, fmt.Errorf("index image %s: %w", id, err)
	}

	s.searchCache.InvalidateAll()

	s.logger.Info("image uploaded",
		"image_id", id,
		"object_name", objectName,
		"size", doc.FileSize,
	)

	return doc, nil
}

func (s *ImageService) SearchByTag(ctx context.Context, tag string) ([]*domain.ImageDocument, error) {
	return s.search(ctx, searchKindTag, "tag", tag, s.index.SearchByTag)
}

func (s *ImageService) SearchByDescription(ctx context.Context, keyword string) ([]*domain.ImageDocument, error) {
	return s.search(ctx, searchKindDescription, "keyword", keyword, s.index.SearchByDescription)
}

func (s *ImageService) SearchByFileName(ctx context.Context, keyword string) ([]*domain.ImageDocument, error) {
	return s.search(ctx, searchKindFileName, "keyword", keyword, s.index.SearchByFileName)
}

// Delete removes the image from storage and from the index. A storage
// failure does not fail the delete; the object is queued for the cleanup
// worker instead.
func (s *ImageService) Delete(ctx context.Context, id string) error {
	doc, err := s.index.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrRecordNotFound) {
			return domain.NewImageNotFoundError(id)
		}
		return fmt.Errorf("find image %s: %w", id, err)
	}

	if err := s.storage.DeleteObject(ctx, doc.ObjectName); err != nil {
		s.logger.Warn("object delete failed, queued for cleanup",
			"image_id", id,
			"object_name", doc.ObjectName,
			"error", err,
		)
		if qErr := s.pending.Enqueue(ctx, doc.ObjectName, err); qErr != nil {
			return fmt.Errorf("queue object %s for cleanup: %w", doc.ObjectName, qErr)
		}
	}

	if err := s.index.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, application.ErrRecordNotFound) {
			return domain.NewImageNotFoundError(id)
		}
		return fmt.Errorf("delete image %s: %w", id, err)
	}

	s.searchCache.InvalidateAll()

	s.logger.Info("image deleted", "image_id", id)

	return nil
}

func (s *ImageService) search(
	ctx context.Context,
	kind, field, keyword string,
	find func(ctx context.Context, keyword string) ([]*domain.ImageDocument, error),
) ([]*domain.ImageDocument, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.NewValidationError(field, field+" cannot be empty")
	}

	key := kind + ":" + strings.ToLower(keyword)
	docs, err := s.searchCache.GetOrLoad(ctx, key, func(ctx context.Context) ([]*domain.ImageDocument, error) {
		return find(ctx, keyword)
	})
	if err != nil {
		return nil, fmt.Errorf("search images by %s: %w", kind, err)
	}

	return docs, nil
}

// discardObject undoes a PutObject after a later step failed. When the
// delete itself fails the object is left to the cleanup worker.
func (s *ImageService) discardObject(ctx context.Context, objectName string, cause error) {
	err := s.storage.DeleteObject(ctx, objectName)
	if err == nil {
		return
	}

	s.logger.Error("compensating object delete failed",
		"object_name", objectName,
		"cause", cause,
		"error", err,
	)
	if qErr := s.pending.Enqueue(ctx, objectName, err); qErr != nil {
		s.logger.Error("queue object for cleanup failed",
			"object_name", objectName,
			"error", qErr,
		)
	}
}
