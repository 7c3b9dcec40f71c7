package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// Dispatcher turns site events into emails. Each call makes at most one
// delivery attempt per message.
type Dispatcher struct {
	mailer Mailer
	inbox  string
	now    func() time.Time
}

// NewDispatcher returns a Dispatcher sending through mailer; inbox is the
// internal mailbox that receives every notification.
func NewDispatcher(mailer Mailer, inbox string) *Dispatcher {
	return &Dispatcher{mailer: mailer, inbox: inbox, now: time.Now}
}

// ContactSubmitted 問い合わせ内容を社内受信箱へ通知する
func (d *Dispatcher) ContactSubmitted(ctx context.Context, msg *model.ContactMessage) error {
	html, err := contactHTML(msg)
	if err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}
	return d.mailer.Send(ctx, &Message{
		To:      []string{d.inbox},
		Subject: "New Contact Form Submission - CrispAI Website",
		HTML:    html,
	})
}

// NewsletterSubscribed ニュースレター購読を社内受信箱へ通知する
func (d *Dispatcher) NewsletterSubscribed(ctx context.Context, sub *model.NewsletterSubscription) error {
	html, err := newsletterHTML(sub)
	if err != nil {
		return fmt.Errorf("render newsletter email: %w", err)
	}
	return d.mailer.Send(ctx, &Message{
		To:      []string{d.inbox},
		Subject: "New Newsletter Subscription - CrispAI Website",
		HTML:    html,
	})
}

// MeetingBooked sends the customer confirmation (with meeting.ics, cc the
// inbox) and the admin copy. Both are attempted; failures are joined.
func (d *Dispatcher) MeetingBooked(ctx context.Context, m *model.Meeting) error {
	data := newMeetingData(m)

	customerHTML, err := render(meetingConfirmationTemplate, data)
	if err != nil {
		return fmt.Errorf("render meeting confirmation: %w", err)
	}
	adminHTML, err := render(meetingAdminTemplate, data)
	if err != nil {
		return fmt.Errorf("render meeting admin email: %w", err)
	}

	customer := &Message{
		To:      []string{m.Email},
		Cc:      []string{d.inbox},
		Subject: "Meeting Confirmed - " + m.MeetingType,
		HTML:    customerHTML,
		Attachments: []Attachment{{
			Filename:    "meeting.ics",
			ContentType: "text/calendar",
			Content:     BuildInvite(m, d.inbox, d.now()),
		}},
	}
	admin := &Message{
		To:      []string{d.inbox},
		Subject: "New Meeting Booked - " + m.MeetingType,
		HTML:    adminHTML,
	}

	var errs []error
	if err := d.mailer.Send(ctx, customer); err != nil {
		errs = append(errs, fmt.Errorf("customer confirmation: %w", err))
	}
	if err := d.mailer.Send(ctx, admin); err != nil {
		errs = append(errs, fmt.Errorf("admin notification: %w", err))
	}
	return errors.Join(errs...)
}

// MeetingRescheduled 顧客へ日程変更を通知する（cc: 社内受信箱、添付なし）
func (d *Dispatcher) MeetingRescheduled(ctx context.Context, m *model.Meeting) error {
	html, err := render(meetingRescheduleTemplate, newMeetingData(m))
	if err != nil {
		return fmt.Errorf("render reschedule email: %w", err)
	}
	return d.mailer.Send(ctx, &Message{
		To:      []string{m.Email},
		Cc:      []string{d.inbox},
		Subject: "Meeting Rescheduled - " + m.MeetingType,
		HTML:    html,
	})
}
