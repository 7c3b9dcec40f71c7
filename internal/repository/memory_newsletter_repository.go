package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// MemoryNewsletterRepository keeps subscriptions in a map keyed by id.
type MemoryNewsletterRepository struct {
	mu     sync.RWMutex
	nextID int64
	subs   map[int64]*model.NewsletterSubscription
	now    clock
}

// NewMemoryNewsletterRepository creates an empty MemoryNewsletterRepository.
func NewMemoryNewsletterRepository() *MemoryNewsletterRepository {
	return &MemoryNewsletterRepository{nextID: 1, subs: make(map[int64]*model.NewsletterSubscription), now: utcNow}
}

var _ NewsletterRepository = (*MemoryNewsletterRepository)(nil)

// Create stores a copy of sub and fills in its ID and SubscribedAt.
// The duplicate check and the insert happen under one lock.
func (r *MemoryNewsletterRepository) Create(_ context.Context, sub *model.NewsletterSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subs {
		if s.Email == sub.Email {
			return ErrDuplicate
		}
	}
	sub.ID = r.nextID
	r.nextID++
	sub.SubscribedAt = r.now()
	r.subs[sub.ID] = sub.Clone()
	return nil
}

func (r *MemoryNewsletterRepository) GetByEmail(_ context.Context, email string) (*model.NewsletterSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.subs {
		if s.Email == email {
			return s.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryNewsletterRepository) List(_ context.Context) ([]*model.NewsletterSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.NewsletterSubscription, 0, len(r.subs))
	for _, s := range r.subs {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
