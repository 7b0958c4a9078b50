package repository

import (
	"context"

	"ceremonia/internal/model"
	"ceremonia/internal/store"
)

// SubscriptionRepository defines methods for accessing subscription records.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *model.Subscription) error
	// GetByUser returns the user's most recent subscription, or nil.
	GetByUser(ctx context.Context, userID int) (*model.Subscription, error)
	Count(ctx context.Context) (int, error)
}

type subscriptionRepo struct {
	db *store.Store
}

// NewSubscriptionRepo creates a new SubscriptionRepository.
func NewSubscriptionRepo(db *store.Store) SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

func (r *subscriptionRepo) Create(_ context.Context, sub *model.Subscription) error {
	r.db.Lock()
	defer r.db.Unlock()
	sub.ID = len(r.db.Subscriptions) + 1
	r.db.Subscriptions = append(r.db.Subscriptions, *sub)
	return nil
}

func (r *subscriptionRepo) GetByUser(_ context.Context, userID int) (*model.Subscription, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	// Later subscriptions supersede earlier ones; walk backwards.
	for i := len(r.db.Subscriptions) - 1; i >= 0; i-- {
		if r.db.Subscriptions[i].UserID == userID {
			sub := r.db.Subscriptions[i]
			return &sub, nil
		}
	}
	return nil, nil
}

func (r *subscriptionRepo) Count(_ context.Context) (int, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	return len(r.db.Subscriptions), nil
}
