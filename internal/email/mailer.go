// Package email はサイトからの通知メール（問い合わせ・購読・ミーティング）を送信する。
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// Attachment is a file carried by a Message.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is one outgoing email. From is filled in by the Mailer.
type Message struct {
	To          []string
	Cc          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer は 1 通のメールを 1 回だけ送信するトランスポート
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer returns a Mailer backed by Resend. from is the sender
// identity, e.g. "CrispAI <noreply@crispai.ca>".
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

func (m *ResendMailer) Send(ctx context.Context, msg *Message) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		Cc:      msg.Cc,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	for _, a := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     a.Content,
		})
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send %q via Resend: %w", msg.Subject, err)
	}
	return nil
}

// LogMailer は送信せずに宛先と件名だけをログに出す（API キー未設定時の代替）
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer returns a LogMailer writing to logger (slog.Default when nil).
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	names := make([]string, len(msg.Attachments))
	for i, a := range msg.Attachments {
		names[i] = a.Filename
	}
	m.logger.InfoContext(ctx, "email not sent (no transport configured)",
		"to", msg.To, "cc", msg.Cc, "subject", msg.Subject, "attachments", names)
	return nil
}
