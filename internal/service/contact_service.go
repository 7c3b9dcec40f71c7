package service

import (
	"context"

	"github.com/kipkirui63/all-in-one/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message and notifies the internal inbox.
	// msg.ID and CreatedAt are populated on success.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns all contact messages in submission order.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}
