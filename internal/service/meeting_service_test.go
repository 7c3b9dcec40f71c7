package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/repository"
)

func newTestMeeting() *model.Meeting {
	return &model.Meeting{
		Name:          "Jane",
		Email:         "jane@example.com",
		MeetingType:   model.MeetingTypeConsultation,
		PreferredDate: time.Date(2030, 1, 2, 15, 0, 0, 0, time.UTC),
		Timezone:      "UTC",
	}
}

func TestMeetingService_Book(t *testing.T) {
	notifier := &mockNotifier{}
	svc := NewMeetingService(repository.NewMemoryMeetingRepository(), notifier)

	m := newTestMeeting()
	if err := svc.Book(context.Background(), m); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if m.ID != 1 || m.Duration != 30 || m.Status != model.MeetingStatusPending {
		t.Errorf("unexpected booked meeting %+v", m)
	}
	if len(notifier.booked) != 1 || notifier.booked[0].ID != 1 {
		t.Errorf("expected booking notification, got %+v", notifier.booked)
	}
}

func TestMeetingService_Book_NotificationFailureIsSwallowed(t *testing.T) {
	svc := NewMeetingService(repository.NewMemoryMeetingRepository(), &mockNotifier{err: errors.New("down")})
	if err := svc.Book(context.Background(), newTestMeeting()); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestMeetingService_List_NeverNil(t *testing.T) {
	svc := NewMeetingService(repository.NewMemoryMeetingRepository(), nil)
	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestMeetingService_Get_NotFound(t *testing.T) {
	svc := NewMeetingService(repository.NewMemoryMeetingRepository(), nil)
	if _, err := svc.Get(context.Background(), 5); !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestMeetingService_Update_Reschedule(t *testing.T) {
	ctx := context.Background()
	start := newTestMeeting().PreferredDate

	tests := []struct {
		name       string
		upd        func() model.MeetingUpdate
		wantEmails int
	}{
		{"status only", func() model.MeetingUpdate {
			s := model.MeetingStatusConfirmed
			return model.MeetingUpdate{Status: &s}
		}, 0},
		{"same date", func() model.MeetingUpdate {
			d := start
			return model.MeetingUpdate{PreferredDate: &d}
		}, 0},
		{"same instant in another zone", func() model.MeetingUpdate {
			d := start.In(time.FixedZone("X", 3600))
			return model.MeetingUpdate{PreferredDate: &d}
		}, 0},
		{"new date", func() model.MeetingUpdate {
			d := start.Add(24 * time.Hour)
			return model.MeetingUpdate{PreferredDate: &d}
		}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &mockNotifier{}
			svc := NewMeetingService(repository.NewMemoryMeetingRepository(), notifier)
			m := newTestMeeting()
			if err := svc.Book(ctx, m); err != nil {
				t.Fatalf("Book: %v", err)
			}

			got, err := svc.Update(ctx, m.ID, tt.upd())
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if got.ID != m.ID || !got.CreatedAt.Equal(m.CreatedAt) {
				t.Error("expected id and createdAt to be preserved")
			}
			if len(notifier.rescheduled) != tt.wantEmails {
				t.Errorf("expected %d reschedule emails, got %d", tt.wantEmails, len(notifier.rescheduled))
			}
		})
	}
}

func TestMeetingService_Update_ConcurrentRescheduleNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	notifier := &mockNotifier{}
	svc := NewMeetingService(repository.NewMemoryMeetingRepository(), notifier)
	m := newTestMeeting()
	if err := svc.Book(ctx, m); err != nil {
		t.Fatalf("Book: %v", err)
	}

	moved := m.PreferredDate.Add(24 * time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := moved
			if _, err := svc.Update(ctx, m.ID, model.MeetingUpdate{PreferredDate: &d}); err != nil {
				t.Errorf("Update: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(notifier.rescheduled) != 1 {
		t.Errorf("expected exactly 1 reschedule email, got %d", len(notifier.rescheduled))
	}
}

func TestMeetingService_Update_EmptyLeavesRecordUntouched(t *testing.T) {
	ctx := context.Background()
	svc := NewMeetingService(repository.NewMemoryMeetingRepository(), nil)
	m := newTestMeeting()
	if err := svc.Book(ctx, m); err != nil {
		t.Fatalf("Book: %v", err)
	}

	got, err := svc.Update(ctx, m.ID, model.MeetingUpdate{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !got.UpdatedAt.Equal(m.UpdatedAt) {
		t.Errorf("expected updatedAt %v to stay, got %v", m.UpdatedAt, got.UpdatedAt)
	}
	if _, err := svc.Update(ctx, 99, model.MeetingUpdate{}); !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestMeetingService_Update_NotFound(t *testing.T) {
	svc := NewMeetingService(repository.NewMemoryMeetingRepository(), nil)
	s := model.MeetingStatusConfirmed
	if _, err := svc.Update(context.Background(), 3, model.MeetingUpdate{Status: &s}); !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestMeetingService_Cancel(t *testing.T) {
	ctx := context.Background()
	svc := NewMeetingService(repository.NewMemoryMeetingRepository(), nil)
	m := newTestMeeting()
	_ = svc.Book(ctx, m)

	if err := svc.Cancel(ctx, m.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if err := svc.Cancel(ctx, m.ID); !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound on second cancel, got %v", err)
	}
}
