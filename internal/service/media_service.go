package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ceremonia/internal/model"
	"ceremonia/internal/repository"
)

var ErrStorageLimitReached = errors.New("photo limit reached for the current plan")

// UploadMediaParams are the fields accepted by media upload.
type UploadMediaParams struct {
	EventID  int
	Type     string
	FileName string
	FileSize int64
	Author   string
	Metadata map[string]any
}

// MediaStorageInfo reports quota usage after an upload.
type MediaStorageInfo struct {
	UsedFiles  int
	PhotoLimit int
	Subscribed bool
}

// MediaService stores gallery items and enforces plan photo quotas.
type MediaService interface {
	Upload(ctx context.Context, userID int, p UploadMediaParams) (*model.Media, MediaStorageInfo, error)
}

type mediaService struct {
	media  repository.MediaRepository
	events repository.EventRepository
	subs   repository.SubscriptionRepository
	// processingDelay mimics upload processing time before the response.
	// Deliberately not cancellable: a caller that disconnects early has no
	// effect on completion.
	processingDelay time.Duration
	logger          zerolog.Logger
}

// NewMediaService creates a new MediaService with a scoped logger.
func NewMediaService(media repository.MediaRepository, events repository.EventRepository, subs repository.SubscriptionRepository, processingDelay time.Duration, logger zerolog.Logger) MediaService {
	return &mediaService{
		media:           media,
		events:          events,
		subs:            subs,
		processingDelay: processingDelay,
		logger:          logger.With().Str("service", "MediaService").Logger(),
	}
}

func (s *mediaService) Upload(ctx context.Context, userID int, p UploadMediaParams) (*model.Media, MediaStorageInfo, error) {
	info := MediaStorageInfo{}

	event, err := s.events.GetByID(ctx, p.EventID)
	if err != nil {
		return nil, info, err
	}
	if event == nil {
		return nil, info, ErrEventNotFound
	}

	sub, err := s.subs.GetByUser(ctx, userID)
	if err != nil {
		return nil, info, err
	}
	if sub != nil {
		limits := model.LimitsForPlan(sub.Plan)
		info.Subscribed = true
		info.PhotoLimit = limits.Photos
		if p.Type == "photo" && limits.Photos > 0 {
			count, err := s.media.CountByEventAndType(ctx, p.EventID, "photo")
			if err != nil {
				return nil, info, err
			}
			if count >= limits.Photos {
				return nil, info, ErrStorageLimitReached
			}
		}
	}

	nowTime := time.Now().UTC()
	mediaID := fmt.Sprintf("MEDIA-%d-%s", nowTime.UnixMilli(), strings.ToUpper(randHex(4)))
	ext := fileExtension(p.FileName)

	item := &model.Media{
		MediaID:      mediaID,
		EventID:      p.EventID,
		UserID:       userID,
		Type:         p.Type,
		FileName:     p.FileName,
		FileSize:     p.FileSize,
		FileType:     fileTypeFor(p.Type),
		MimeType:     mimeTypeFor(p.Type),
		URL:          fmt.Sprintf("https://storage.ceremonia.com/events/%d/media/%s.%s", p.EventID, mediaID, ext),
		ThumbnailURL: fmt.Sprintf("https://storage.ceremonia.com/events/%d/thumbnails/%s_thumb.jpg", p.EventID, mediaID),
		Author:       orDefault(p.Author, "Guest"),
		UploadedAt:   nowTime,
		Status:       "processed",
		Metadata:     p.Metadata,
		Permissions:  model.MediaPermissions{View: true, Download: true, Share: true},
	}
	if item.FileSize == 0 {
		item.FileSize = 1024 * 1024
	}
	if err := s.media.Create(ctx, item); err != nil {
		return nil, info, err
	}

	total, err := s.media.Count(ctx)
	if err != nil {
		return nil, info, err
	}
	info.UsedFiles = total

	if s.processingDelay > 0 {
		time.Sleep(s.processingDelay)
	}

	s.logger.Info().Str("media_id", mediaID).Int("event_id", p.EventID).Str("type", p.Type).Msg("Media stored")
	return item, info, nil
}

func fileExtension(fileName string) string {
	parts := strings.Split(fileName, ".")
	return strings.ToLower(parts[len(parts)-1])
}

func fileTypeFor(mediaType string) string {
	switch mediaType {
	case "photo":
		return "image"
	case "video":
		return "video"
	case "audio":
		return "audio"
	default:
		return "document"
	}
}

func mimeTypeFor(mediaType string) string {
	switch mediaType {
	case "photo":
		return "image/jpeg"
	case "video":
		return "video/mp4"
	default:
		return "application/octet-stream"
	}
}
