package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/repository"
)

type mockNewsletterRepository struct {
	getByEmailFunc func(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	createFunc     func(ctx context.Context, sub *model.NewsletterSubscription) error
}

func (m *mockNewsletterRepository) Create(ctx context.Context, sub *model.NewsletterSubscription) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, sub)
	}
	sub.ID = 1
	return nil
}

func (m *mockNewsletterRepository) GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockNewsletterRepository) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	return nil, nil
}

func TestNewsletterService_Subscribe(t *testing.T) {
	notifier := &mockNotifier{}
	svc := NewNewsletterService(&mockNewsletterRepository{}, notifier)

	sub := &model.NewsletterSubscription{Email: "new@example.com"}
	if err := svc.Subscribe(context.Background(), sub); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if sub.ID != 1 {
		t.Errorf("expected id 1, got %d", sub.ID)
	}
	if len(notifier.subscribers) != 1 {
		t.Errorf("expected one notification, got %d", len(notifier.subscribers))
	}
}

func TestNewsletterService_Subscribe_Existing(t *testing.T) {
	notifier := &mockNotifier{}
	created := false
	repo := &mockNewsletterRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
			return &model.NewsletterSubscription{ID: 9, Email: email}, nil
		},
		createFunc: func(ctx context.Context, sub *model.NewsletterSubscription) error {
			created = true
			return nil
		},
	}
	svc := NewNewsletterService(repo, notifier)

	err := svc.Subscribe(context.Background(), &model.NewsletterSubscription{Email: "dup@example.com"})
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
	if created || len(notifier.subscribers) != 0 {
		t.Error("duplicate must neither be stored nor notified")
	}
}

func TestNewsletterService_Subscribe_RaceMapsDuplicate(t *testing.T) {
	repo := &mockNewsletterRepository{
		createFunc: func(ctx context.Context, sub *model.NewsletterSubscription) error {
			return repository.ErrDuplicate
		},
	}
	err := NewNewsletterService(repo, nil).Subscribe(context.Background(), &model.NewsletterSubscription{Email: "x@example.com"})
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Errorf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestNewsletterService_Subscribe_LookupError(t *testing.T) {
	repo := &mockNewsletterRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
			return nil, errors.New("db down")
		},
	}
	err := NewNewsletterService(repo, nil).Subscribe(context.Background(), &model.NewsletterSubscription{Email: "x@example.com"})
	if err == nil || errors.Is(err, ErrAlreadySubscribed) {
		t.Errorf("expected a plain error, got %v", err)
	}
}

func TestNewsletterService_WithMemoryStore(t *testing.T) {
	svc := NewNewsletterService(repository.NewMemoryNewsletterRepository(), nil)
	ctx := context.Background()
	if err := svc.Subscribe(ctx, &model.NewsletterSubscription{Email: "a@example.com"}); err != nil {
		t.Fatalf("first Subscribe: %v", err)
	}
	if err := svc.Subscribe(ctx, &model.NewsletterSubscription{Email: "a@example.com"}); !errors.Is(err, ErrAlreadySubscribed) {
		t.Errorf("expected ErrAlreadySubscribed, got %v", err)
	}
	list, _ := svc.List(ctx)
	if len(list) != 1 {
		t.Errorf("expected 1 subscription, got %d", len(list))
	}
}
