package repository

import (
	"context"
	"time"
)

// clock is overridable in tests.
type clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

// memoryDB satisfies DB for the in-memory backend; it is always reachable.
type memoryDB struct{}

func (memoryDB) Ping(context.Context) error { return nil }

// NewMemoryStore returns a Store whose collections live in process memory.
// Nothing survives a restart.
func NewMemoryStore() *Store {
	return &Store{
		Backend:    BackendMemory,
		Users:      NewMemoryUserRepository(),
		Newsletter: NewMemoryNewsletterRepository(),
		Contacts:   NewMemoryContactRepository(),
		Meetings:   NewMemoryMeetingRepository(),
		DB:         memoryDB{},
		closeFn:    func(context.Context) error { return nil },
	}
}
