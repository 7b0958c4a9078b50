package repository

import (
	"context"

	"ceremonia/internal/model"
	"ceremonia/internal/store"
)

// EventRepository defines methods for accessing event records.
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) error
	GetByID(ctx context.Context, id int) (*model.Event, error)
	// GetOwned returns the event only when it belongs to userID.
	GetOwned(ctx context.Context, id, userID int) (*model.Event, error)
	// ListByUser returns the user's events, optionally filtered by status.
	ListByUser(ctx context.Context, userID int, status string) ([]model.Event, error)
	CountByUser(ctx context.Context, userID int) (int, error)
}

type eventRepo struct {
	db *store.Store
}

// NewEventRepo creates a new EventRepository over the in-memory store.
func NewEventRepo(db *store.Store) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(_ context.Context, e *model.Event) error {
	r.db.Lock()
	defer r.db.Unlock()
	e.ID = len(r.db.Events) + 1
	r.db.Events = append(r.db.Events, *e)
	return nil
}

func (r *eventRepo) GetByID(_ context.Context, id int) (*model.Event, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	for i := range r.db.Events {
		if r.db.Events[i].ID == id {
			e := r.db.Events[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *eventRepo) GetOwned(_ context.Context, id, userID int) (*model.Event, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	for i := range r.db.Events {
		if r.db.Events[i].ID == id && r.db.Events[i].UserID == userID {
			e := r.db.Events[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *eventRepo) ListByUser(_ context.Context, userID int, status string) ([]model.Event, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	var result []model.Event
	for i := range r.db.Events {
		e := r.db.Events[i]
		if e.UserID != userID {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (r *eventRepo) CountByUser(_ context.Context, userID int) (int, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	count := 0
	for i := range r.db.Events {
		if r.db.Events[i].UserID == userID {
			count++
		}
	}
	return count, nil
}
