package user

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepo stores users keyed by username.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepo seeds the store. Usernames must be present and unique.
func NewMemoryRepo(seed []User) (*MemoryRepo, error) {
	users := make(map[string]User, len(seed))
	for i, u := range seed {
		if u.Username == "" {
			return nil, fmt.Errorf("seed user %d: missing username", i)
		}
		if _, exists := users[u.Username]; exists {
			return nil, fmt.Errorf("seed user %d: duplicate username %q", i, u.Username)
		}
		users[u.Username] = u
	}
	return &MemoryRepo{users: users}, nil
}

// Create stores u, failing with ErrAlreadyExists if the username is taken.
// The check and the insert happen under one lock.
func (r *MemoryRepo) Create(ctx context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.Username]; exists {
		return ErrAlreadyExists
	}
	r.users[u.Username] = u
	return nil
}

func (r *MemoryRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}
