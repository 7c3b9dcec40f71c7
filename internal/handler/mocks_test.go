package handler

import (
	"context"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// ---------------------------------------------------------------------------
// Mock DB
// ---------------------------------------------------------------------------

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, msg *model.ContactMessage) error
	listFunc   func(ctx context.Context) ([]*model.ContactMessage, error)
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	msg.ID = 1
	return nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockNewsletterService struct {
	subscribeFunc func(ctx context.Context, sub *model.NewsletterSubscription) error
	listFunc      func(ctx context.Context) ([]*model.NewsletterSubscription, error)
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, sub *model.NewsletterSubscription) error {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, sub)
	}
	sub.ID = 1
	return nil
}

func (m *mockNewsletterService) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockMeetingService struct {
	bookFunc   func(ctx context.Context, m *model.Meeting) error
	listFunc   func(ctx context.Context) ([]*model.Meeting, error)
	getFunc    func(ctx context.Context, id int64) (*model.Meeting, error)
	updateFunc func(ctx context.Context, id int64, upd model.MeetingUpdate) (*model.Meeting, error)
	cancelFunc func(ctx context.Context, id int64) error
}

func (m *mockMeetingService) Book(ctx context.Context, mt *model.Meeting) error {
	if m.bookFunc != nil {
		return m.bookFunc(ctx, mt)
	}
	mt.ID = 1
	mt.ApplyDefaults()
	return nil
}

func (m *mockMeetingService) List(ctx context.Context) ([]*model.Meeting, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockMeetingService) Get(ctx context.Context, id int64) (*model.Meeting, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMeetingService) Update(ctx context.Context, id int64, upd model.MeetingUpdate) (*model.Meeting, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, upd)
	}
	return nil, nil
}

func (m *mockMeetingService) Cancel(ctx context.Context, id int64) error {
	if m.cancelFunc != nil {
		return m.cancelFunc(ctx, id)
	}
	return nil
}

type mockChatService struct {
	handleFunc     func(ctx context.Context, sessionID, message string) (string, string, error)
	newSessionFunc func(ctx context.Context) (string, error)
}

func (m *mockChatService) HandleMessage(ctx context.Context, sessionID, message string) (string, string, error) {
	if m.handleFunc != nil {
		return m.handleFunc(ctx, sessionID, message)
	}
	return "", sessionID, nil
}

func (m *mockChatService) NewSessionID(ctx context.Context) (string, error) {
	if m.newSessionFunc != nil {
		return m.newSessionFunc(ctx)
	}
	return "chat_test", nil
}

func (m *mockChatService) Sweep(ctx context.Context) (int, error) {
	return 0, nil
}

func strPtr(s string) *string { return &s }
