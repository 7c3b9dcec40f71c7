package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// MemoryMeetingRepository is the in-memory MeetingRepository.
type MemoryMeetingRepository struct {
	mu       sync.RWMutex
	nextID   int64
	meetings map[int64]*model.Meeting
	now      clock
}

// NewMemoryMeetingRepository creates an empty MemoryMeetingRepository.
func NewMemoryMeetingRepository() *MemoryMeetingRepository {
	return &MemoryMeetingRepository{nextID: 1, meetings: make(map[int64]*model.Meeting), now: utcNow}
}

var _ MeetingRepository = (*MemoryMeetingRepository)(nil)

// Create applies defaults, assigns the next id and stores a copy of m.
func (r *MemoryMeetingRepository) Create(_ context.Context, m *model.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ApplyDefaults()
	m.ID = r.nextID
	r.nextID++
	now := r.now()
	m.CreatedAt = now
	m.UpdatedAt = now
	r.meetings[m.ID] = m.Clone()
	return nil
}

func (r *MemoryMeetingRepository) Get(_ context.Context, id int64) (*model.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meetings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m.Clone(), nil
}

// List returns all meetings in booking order.
func (r *MemoryMeetingRepository) List(_ context.Context) ([]*model.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Meeting, 0, len(r.meetings))
	for _, m := range r.meetings {
		out = append(out, m.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryMeetingRepository) Update(_ context.Context, id int64, upd model.MeetingUpdate) (*model.Meeting, time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.meetings[id]
	if !ok {
		return nil, time.Time{}, ErrNotFound
	}
	updated := existing.Clone()
	upd.Apply(updated, r.now())
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	r.meetings[id] = updated
	return updated.Clone(), existing.PreferredDate, nil
}

func (r *MemoryMeetingRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meetings[id]; !ok {
		return false, nil
	}
	delete(r.meetings, id)
	return true, nil
}
