package service

import (
	"context"
	"sync"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// ---------------------------------------------------------------------------
// mockNotifier: records notification calls
// ---------------------------------------------------------------------------

type mockNotifier struct {
	mu          sync.Mutex
	contacts    []*model.ContactMessage
	subscribers []*model.NewsletterSubscription
	booked      []*model.Meeting
	rescheduled []*model.Meeting
	err         error
}

func (n *mockNotifier) ContactSubmitted(_ context.Context, msg *model.ContactMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.contacts = append(n.contacts, msg)
	return n.err
}

func (n *mockNotifier) NewsletterSubscribed(_ context.Context, sub *model.NewsletterSubscription) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, sub)
	return n.err
}

func (n *mockNotifier) MeetingBooked(_ context.Context, m *model.Meeting) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.booked = append(n.booked, m)
	return n.err
}

func (n *mockNotifier) MeetingRescheduled(_ context.Context, m *model.Meeting) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rescheduled = append(n.rescheduled, m)
	return n.err
}

// ---------------------------------------------------------------------------
// mockCompleter
// ---------------------------------------------------------------------------

type mockCompleter struct {
	completeFunc func(ctx context.Context, req model.CompletionRequest) (string, error)
	calls        []model.CompletionRequest
}

func (c *mockCompleter) Complete(ctx context.Context, req model.CompletionRequest) (string, error) {
	c.calls = append(c.calls, req)
	if c.completeFunc != nil {
		return c.completeFunc(ctx, req)
	}
	return "ok", nil
}

func strPtr(s string) *string { return &s }
