package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// NotifyTimeout bounds each notification call.
const NotifyTimeout = 10 * time.Second

// Notifier sends the emails that follow a successful store write.
// *email.Dispatcher is the production implementation.
type Notifier interface {
	ContactSubmitted(ctx context.Context, msg *model.ContactMessage) error
	NewsletterSubscribed(ctx context.Context, sub *model.NewsletterSubscription) error
	MeetingBooked(ctx context.Context, m *model.Meeting) error
	MeetingRescheduled(ctx context.Context, m *model.Meeting) error
}

// notify は通知を実行し、失敗はログに残して呼び出し元には返さない。
// リクエストがキャンセルされても送信は NotifyTimeout まで続ける。
func notify(ctx context.Context, event string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), NotifyTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		slog.ErrorContext(ctx, "notification failed", "event", event, "error", err)
		return
	}
	slog.DebugContext(ctx, "notification sent", "event", event)
}
