package handler

import (
	"errors"
	"net/http"

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/service"
)

// NewsletterHandler handles newsletter sign-ups.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a NewsletterHandler with the given service.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

type subscribeRequest struct {
	Email     string  `json:"email" validate:"required,email,max=254"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
}

type subscriptionView struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type subscribeResponse struct {
	Message      string           `json:"message"`
	Subscription subscriptionView `json:"subscription"`
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		writeValidation(w, r, err)
		return
	}

	sub := &model.NewsletterSubscription{Email: req.Email, FirstName: req.FirstName, LastName: req.LastName}
	if err := h.newsletterService.Subscribe(r.Context(), sub); err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			writeMessage(w, http.StatusConflict, "This email is already subscribed to our newsletter.")
			return
		}
		writeInternal(w, r, "An error occurred while processing your subscription.", err)
		return
	}

	writeJSON(w, http.StatusCreated, subscribeResponse{
		Message: "Successfully subscribed to newsletter!",
		Subscription: subscriptionView{
			ID:        sub.ID,
			Email:     sub.Email,
			FirstName: sub.FirstName,
			LastName:  sub.LastName,
		},
	})
}
