package service

import (
	"context"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// MeetingService manages meeting bookings.
type MeetingService interface {
	// Book stores m (defaults applied) and sends the confirmation emails.
	Book(ctx context.Context, m *model.Meeting) error
	List(ctx context.Context) ([]*model.Meeting, error)
	// Get returns ErrMeetingNotFound for an unknown id.
	Get(ctx context.Context, id int64) (*model.Meeting, error)
	// Update merges upd into the meeting. A reschedule email is sent only
	// when upd changes PreferredDate.
	Update(ctx context.Context, id int64, upd model.MeetingUpdate) (*model.Meeting, error)
	// Cancel deletes the meeting; ErrMeetingNotFound if it did not exist.
	Cancel(ctx context.Context, id int64) error
}
