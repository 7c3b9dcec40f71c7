package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/repository"
)

// NewsletterService handles newsletter sign-ups.
type NewsletterService interface {
	// Subscribe adds sub to the list. It returns ErrAlreadySubscribed when the
	// email is already present; an existing subscription is never modified.
	Subscribe(ctx context.Context, sub *model.NewsletterSubscription) error
	List(ctx context.Context) ([]*model.NewsletterSubscription, error)
}

type newsletterServiceImpl struct {
	repo     repository.NewsletterRepository
	notifier Notifier
}

// NewNewsletterService creates a NewsletterService. notifier may be nil.
func NewNewsletterService(repo repository.NewsletterRepository, notifier Notifier) NewsletterService {
	return &newsletterServiceImpl{repo: repo, notifier: notifier}
}

func (s *newsletterServiceImpl) Subscribe(ctx context.Context, sub *model.NewsletterSubscription) error {
	_, err := s.repo.GetByEmail(ctx, sub.Email)
	switch {
	case err == nil:
		return ErrAlreadySubscribed
	case !errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("lookup subscription: %w", err)
	}

	// 同時登録はストア側の一意制約で弾かれる
	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadySubscribed
		}
		return fmt.Errorf("create subscription: %w", err)
	}

	if s.notifier != nil {
		saved := sub.Clone()
		notify(ctx, "newsletter_subscribed", func(ctx context.Context) error {
			return s.notifier.NewsletterSubscribed(ctx, saved)
		})
	}
	return nil
}

func (s *newsletterServiceImpl) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	return s.repo.List(ctx)
}
