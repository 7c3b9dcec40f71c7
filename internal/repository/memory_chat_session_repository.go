package repository

import (
	"context"
	"sync"
	"time"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// chatEntry is locked by holding the single slot of sem, so a waiter can
// give up when its context ends.
type chatEntry struct {
	sem     chan struct{}
	session *model.ChatSession
	removed bool // set by DeleteIdle while holding sem
}

func newChatEntry(id string, now time.Time) *chatEntry {
	return &chatEntry{
		sem:     make(chan struct{}, 1),
		session: &model.ChatSession{ID: id, CreatedAt: now, LastActivity: now},
	}
}

func (e *chatEntry) lock(ctx context.Context) error {
	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	// 両方 ready の場合 select はランダムに選ぶので取り直しを確認する
	if err := ctx.Err(); err != nil {
		e.unlock()
		return err
	}
	return nil
}

func (e *chatEntry) tryLock() bool {
	select {
	case e.sem <- struct{}{}:
		return true
	default:
		return false
	}
}

func (e *chatEntry) unlock() { <-e.sem }

// MemoryChatSessionRepository keeps chat sessions in process memory.
// The map is guarded by mu; each session by its own entry lock, held by a
// caller for the duration of a turn. Waiting for that lock honours ctx.
type MemoryChatSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*chatEntry
}

// NewMemoryChatSessionRepository creates an empty session store.
func NewMemoryChatSessionRepository() *MemoryChatSessionRepository {
	return &MemoryChatSessionRepository{sessions: make(map[string]*chatEntry)}
}

var _ ChatSessionRepository = (*MemoryChatSessionRepository)(nil)

func (r *MemoryChatSessionRepository) Acquire(ctx context.Context, id string, now time.Time) (*model.ChatSession, bool, func(), error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, false, nil, err
		}

		r.mu.Lock()
		e, ok := r.sessions[id]
		if !ok {
			e = newChatEntry(id, now)
			r.sessions[id] = e
		}
		r.mu.Unlock()

		if err := e.lock(ctx); err != nil {
			return nil, false, nil, err
		}
		if e.removed {
			// swept between lookup and lock; start over with a fresh entry
			e.unlock()
			continue
		}
		return e.session, !ok, sync.OnceFunc(e.unlock), nil
	}
}

func (r *MemoryChatSessionRepository) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[id]
	return ok, nil
}

func (r *MemoryChatSessionRepository) DeleteIdle(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.sessions {
		if !e.tryLock() {
			continue
		}
		if e.session.LastActivity.Before(cutoff) {
			e.removed = true
			delete(r.sessions, id)
			removed++
		}
		e.unlock()
	}
	return removed, nil
}

func (r *MemoryChatSessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
