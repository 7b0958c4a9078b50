package repository

import (
	"context"

	"ceremonia/internal/model"
	"ceremonia/internal/store"
)

// MediaRepository defines methods for accessing media records.
type MediaRepository interface {
	Create(ctx context.Context, m *model.Media) error
	CountByEventAndType(ctx context.Context, eventID int, mediaType string) (int, error)
	ListByUser(ctx context.Context, userID int) ([]model.Media, error)
	Count(ctx context.Context) (int, error)
}

type mediaRepo struct {
	db *store.Store
}

// NewMediaRepo creates a new MediaRepository.
func NewMediaRepo(db *store.Store) MediaRepository {
	return &mediaRepo{db: db}
}

func (r *mediaRepo) Create(_ context.Context, m *model.Media) error {
	r.db.Lock()
	defer r.db.Unlock()
	m.ID = len(r.db.Media) + 1
	r.db.Media = append(r.db.Media, *m)
	return nil
}

func (r *mediaRepo) CountByEventAndType(_ context.Context, eventID int, mediaType string) (int, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	count := 0
	for i := range r.db.Media {
		if r.db.Media[i].EventID == eventID && r.db.Media[i].Type == mediaType {
			count++
		}
	}
	return count, nil
}

func (r *mediaRepo) ListByUser(_ context.Context, userID int) ([]model.Media, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	var result []model.Media
	for i := range r.db.Media {
		if r.db.Media[i].UserID == userID {
			result = append(result, r.db.Media[i])
		}
	}
	return result, nil
}

func (r *mediaRepo) Count(_ context.Context) (int, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	return len(r.db.Media), nil
}
