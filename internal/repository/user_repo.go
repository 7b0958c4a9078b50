package repository

import (
	"context"

	"ceremonia/internal/model"
	"ceremonia/internal/store"
)

// UserRepository defines methods for accessing user records.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdatePlan(ctx context.Context, id int, plan string) error
	TouchLastLogin(ctx context.Context, id int) error
}

type userRepo struct {
	db *store.Store
}

// NewUserRepo creates a new UserRepository over the in-memory store.
func NewUserRepo(db *store.Store) UserRepository {
	return &userRepo{db: db}
}

// Create assigns the next id and appends the user. Email uniqueness is the
// caller's responsibility; the service checks it first.
func (r *userRepo) Create(_ context.Context, u *model.User) error {
	r.db.Lock()
	defer r.db.Unlock()
	u.ID = len(r.db.Users) + 1
	r.db.Users = append(r.db.Users, *u)
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id int) (*model.User, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	for i := range r.db.Users {
		if r.db.Users[i].ID == id {
			u := r.db.Users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	for i := range r.db.Users {
		if r.db.Users[i].Email == email {
			u := r.db.Users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) UpdatePlan(_ context.Context, id int, plan string) error {
	r.db.Lock()
	defer r.db.Unlock()
	for i := range r.db.Users {
		if r.db.Users[i].ID == id {
			r.db.Users[i].Plan = plan
			r.db.Users[i].UpdatedAt = now()
			return nil
		}
	}
	return nil
}

func (r *userRepo) TouchLastLogin(_ context.Context, id int) error {
	r.db.Lock()
	defer r.db.Unlock()
	for i := range r.db.Users {
		if r.db.Users[i].ID == id {
			r.db.Users[i].LastLogin = now()
			return nil
		}
	}
	return nil
}
