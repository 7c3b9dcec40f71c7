package repository

import (
	"context"
	"sync"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// MemoryUserRepository は UserRepository のインメモリ実装
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]model.User
	now    clock
}

// NewMemoryUserRepository は MemoryUserRepository を生成する
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, users: make(map[int64]model.User), now: utcNow}
}

var _ UserRepository = (*MemoryUserRepository)(nil)

// Create はユーザーを作成する。username が既に存在する場合は ErrDuplicate
func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = r.now()
	r.users[user.ID] = *user
	return nil
}

// Get は ID でユーザーを取得する
func (r *MemoryUserRepository) Get(_ context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// GetByUsername はユーザー名でユーザーを取得する
func (r *MemoryUserRepository) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
