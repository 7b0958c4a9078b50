package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"ceremonia/internal/model"
	"ceremonia/internal/repository"
	"ceremonia/internal/store"
)

func newMediaService(db *store.Store) MediaService {
	return NewMediaService(
		repository.NewMediaRepo(db),
		repository.NewEventRepo(db),
		repository.NewSubscriptionRepo(db),
		0,
		zerolog.Nop(),
	)
}

func TestUploadUnknownEvent(t *testing.T) {
	svc := newMediaService(store.New())
	_, _, err := svc.Upload(context.Background(), 1, UploadMediaParams{EventID: 42, Type: "photo", FileName: "a.jpg"})
	if err != ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestUploadAppliesDefaults(t *testing.T) {
	db := store.New()
	eventID := seedEvent(db, 1, model.PlanPremium)
	svc := newMediaService(db)

	item, info, err := svc.Upload(context.Background(), 1, UploadMediaParams{
		EventID:  eventID,
		Type:     "photo",
		FileName: "ceremony.JPG",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if item.Author != "Guest" {
		t.Fatalf("expected default author Guest, got %q", item.Author)
	}
	if item.FileSize != 1024*1024 {
		t.Fatalf("expected default file size of 1 MB, got %d", item.FileSize)
	}
	if item.FileType != "image" || item.MimeType != "image/jpeg" {
		t.Fatalf("unexpected type mapping: %q/%q", item.FileType, item.MimeType)
	}
	if !strings.HasSuffix(item.URL, ".jpg") {
		t.Fatalf("storage URL must use the lowercased extension, got %q", item.URL)
	}
	if !item.Permissions.View || !item.Permissions.Download || !item.Permissions.Share {
		t.Fatalf("unexpected permissions %+v", item.Permissions)
	}
	if info.UsedFiles != 1 {
		t.Fatalf("expected 1 used file, got %d", info.UsedFiles)
	}
	if info.Subscribed {
		t.Fatal("no subscription was seeded")
	}
}

func TestUploadEnforcesPhotoQuota(t *testing.T) {
	db := store.New()
	eventID := seedEvent(db, 1, model.PlanBasic)
	db.Subscriptions = append(db.Subscriptions, model.Subscription{
		ID:     1,
		UserID: 1,
		Plan:   model.PlanBasic,
		Status: "active",
	})
	limit := model.LimitsForPlan(model.PlanBasic).Photos
	for i := 0; i < limit; i++ {
		db.Media = append(db.Media, model.Media{ID: i + 1, EventID: eventID, UserID: 1, Type: "photo", UploadedAt: time.Now()})
	}
	svc := newMediaService(db)

	_, info, err := svc.Upload(context.Background(), 1, UploadMediaParams{EventID: eventID, Type: "photo", FileName: "extra.jpg"})
	if err != ErrStorageLimitReached {
		t.Fatalf("expected ErrStorageLimitReached, got %v", err)
	}
	if info.PhotoLimit != limit {
		t.Fatalf("expected reported limit %d, got %d", limit, info.PhotoLimit)
	}

	// Videos are not counted against the photo quota.
	if _, _, err := svc.Upload(context.Background(), 1, UploadMediaParams{EventID: eventID, Type: "video", FileName: "clip.mp4"}); err != nil {
		t.Fatalf("video upload must not hit the photo quota: %v", err)
	}
}

func TestUploadUnlimitedPhotosOnEnterprise(t *testing.T) {
	db := store.New()
	eventID := seedEvent(db, 1, model.PlanEnterprise)
	db.Subscriptions = append(db.Subscriptions, model.Subscription{ID: 1, UserID: 1, Plan: model.PlanEnterprise, Status: "active"})
	svc := newMediaService(db)

	if _, _, err := svc.Upload(context.Background(), 1, UploadMediaParams{EventID: eventID, Type: "photo", FileName: "a.jpg"}); err != nil {
		t.Fatalf("enterprise photo quota is unlimited: %v", err)
	}
}
