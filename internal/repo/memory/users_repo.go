package memory

import (
	"context"
	"sync"
	"time"

	"github.com/geocoder89/campushub/internal/domain/user"
	"github.com/geocoder89/campushub/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UsersRepo struct {
	mu    sync.RWMutex
	items map[string]user.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		items: make(map[string]user.User),
	}
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}

	return user.User{}, repo.ErrNotFound
}

func (r *UsersRepo) Create(ctx context.Context, email, passwordHash string) (user.User, error) {
	u := user.User{
		ID:           primitive.NewObjectID().Hex(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	r.mu.Lock()
	r.items[u.ID] = u
	r.mu.Unlock()

	return u, nil
}

// Count reports how many stored users carry the given email; tests use it to
// assert the register existence check.
func (r *UsersRepo) Count(email string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0

	for _, u := range r.items {
		if u.Email == email {
			n++
		}
	}

	return n
}
