package repository

import (
	"context"
	"sync"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// MemoryContactRepository is an append-only in-memory ContactRepository.
type MemoryContactRepository struct {
	mu       sync.RWMutex
	nextID   int64
	messages []*model.ContactMessage
	now      clock
}

// NewMemoryContactRepository creates an empty MemoryContactRepository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{nextID: 1, now: utcNow}
}

var _ ContactRepository = (*MemoryContactRepository)(nil)

// Save appends a copy of msg and populates msg.ID and msg.CreatedAt.
func (r *MemoryContactRepository) Save(_ context.Context, msg *model.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = r.nextID
	r.nextID++
	msg.CreatedAt = r.now()
	r.messages = append(r.messages, msg.Clone())
	return nil
}

// List returns every stored message, oldest first.
func (r *MemoryContactRepository) List(_ context.Context) ([]*model.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.ContactMessage, len(r.messages))
	for i, m := range r.messages {
		out[i] = m.Clone()
	}
	return out, nil
}
