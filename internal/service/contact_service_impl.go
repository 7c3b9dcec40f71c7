package service

import (
	"context"
	"fmt"

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier Notifier
}

// NewContactService creates a ContactService backed by the given repository.
// notifier may be nil.
func NewContactService(repo repository.ContactRepository, notifier Notifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit persists the message first; the email is best-effort.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if err := s.repo.Save(ctx, msg); err != nil {
		return fmt.Errorf("save contact message: %w", err)
	}
	if s.notifier != nil {
		saved := msg.Clone()
		notify(ctx, "contact_submitted", func(ctx context.Context) error {
			return s.notifier.ContactSubmitted(ctx, saved)
		})
	}
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}
