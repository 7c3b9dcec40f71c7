package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/repository"
)

type meetingServiceImpl struct {
	repo     repository.MeetingRepository
	notifier Notifier
}

// NewMeetingService creates a MeetingService. notifier may be nil.
func NewMeetingService(repo repository.MeetingRepository, notifier Notifier) MeetingService {
	return &meetingServiceImpl{repo: repo, notifier: notifier}
}

func (s *meetingServiceImpl) Book(ctx context.Context, m *model.Meeting) error {
	if err := s.repo.Create(ctx, m); err != nil {
		return fmt.Errorf("create meeting: %w", err)
	}
	if s.notifier != nil {
		saved := m.Clone()
		notify(ctx, "meeting_booked", func(ctx context.Context) error {
			return s.notifier.MeetingBooked(ctx, saved)
		})
	}
	return nil
}

func (s *meetingServiceImpl) List(ctx context.Context) ([]*model.Meeting, error) {
	meetings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if meetings == nil {
		meetings = []*model.Meeting{}
	}
	return meetings, nil
}

func (s *meetingServiceImpl) Get(ctx context.Context, id int64) (*model.Meeting, error) {
	m, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMeetingNotFound
	}
	return m, err
}

func (s *meetingServiceImpl) Update(ctx context.Context, id int64, upd model.MeetingUpdate) (*model.Meeting, error) {
	// 変更がなければ書き込まない（updatedAt も更新しない）
	if upd.IsEmpty() {
		return s.Get(ctx, id)
	}

	// 更新前の日時は書き込みと同時に取得するので、同時更新でも通知は一度だけ
	updated, prevDate, err := s.repo.Update(ctx, id, upd)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMeetingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update meeting: %w", err)
	}

	rescheduled := upd.PreferredDate != nil && !updated.PreferredDate.Equal(prevDate)
	if rescheduled && s.notifier != nil {
		saved := updated.Clone()
		notify(ctx, "meeting_rescheduled", func(ctx context.Context) error {
			return s.notifier.MeetingRescheduled(ctx, saved)
		})
	}
	return updated, nil
}

func (s *meetingServiceImpl) Cancel(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	if !ok {
		return ErrMeetingNotFound
	}
	return nil
}
