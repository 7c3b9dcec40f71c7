package repository

import (
	"context"
	"time"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository はユーザー永続化のインターフェース
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// NewsletterRepository persists newsletter subscriptions. Email is unique;
// Create returns ErrDuplicate when the address is already on the list.
type NewsletterRepository interface {
	Create(ctx context.Context, sub *model.NewsletterSubscription) error
	GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	List(ctx context.Context) ([]*model.NewsletterSubscription, error)
}

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

// MeetingRepository persists meeting bookings.
//
// Update merges the non-nil fields of upd into the stored row, keeps ID and
// CreatedAt and refreshes UpdatedAt. previousDate is the PreferredDate the
// row had immediately before this write, read atomically with it. Update
// returns ErrNotFound for unknown ids.
// Delete reports whether a row existed.
//
// Returned records carry timestamps at the precision the backend stores, so
// a later Get returns identical values.
type MeetingRepository interface {
	Create(ctx context.Context, m *model.Meeting) error
	Get(ctx context.Context, id int64) (*model.Meeting, error)
	List(ctx context.Context) ([]*model.Meeting, error)
	Update(ctx context.Context, id int64, upd model.MeetingUpdate) (updated *model.Meeting, previousDate time.Time, err error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ChatSessionRepository holds live chat sessions.
type ChatSessionRepository interface {
	// Acquire returns the session for id, creating an empty one stamped with now
	// when none exists. The session stays locked for the caller until release
	// is called; created reports whether it was made by this call.
	Acquire(ctx context.Context, id string, now time.Time) (s *model.ChatSession, created bool, release func(), err error)
	Exists(ctx context.Context, id string) (bool, error)
	// DeleteIdle removes sessions whose LastActivity is before cutoff and
	// returns how many were removed. Sessions in use are skipped.
	DeleteIdle(ctx context.Context, cutoff time.Time) (int, error)
	Len() int
}
