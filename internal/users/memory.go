package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/regvault/internal/common"
)

// MemoryRepository is the in-process user directory. Writes happen
// synchronously under a mutex, so a login racing an in-flight registration
// for the same email observes the directory entry immediately
// (read-your-writes), independent of any pending storage-tier work.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*User)}
}

func (r *MemoryRepository) PutIfAbsent(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return common.ErrDuplicateUser
	}

	c := *user
	r.users[user.Email] = &c
	return nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, common.ErrNotFound
	}

	c := *u
	return &c, nil
}

func (r *MemoryRepository) Remove(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, email)
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make(map[string]*User)
	return nil
}
