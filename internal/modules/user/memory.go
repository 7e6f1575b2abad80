package user

import (
	"context"

	"github.com/arjunalabs/pos-backend/internal/apierr"
)

type memoryRepository struct {
	users []User
}

// NewMemoryRepository creates a repository over a fixed user set. The slice
// is read-only for the process lifetime.
func NewMemoryRepository(users []User) Repository {
	return &memoryRepository{users: users}
}

func (r *memoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	// Exact match only; a near-miss address must not resolve to anyone.
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, apierr.NotFound("no user with email %s", email)
}

func (r *memoryRepository) GetUserByID(ctx context.Context, id int) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, apierr.NotFound("no user with id %d", id)
}

func (r *memoryRepository) ListUsers(ctx context.Context) ([]User, error) {
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out, nil
}
