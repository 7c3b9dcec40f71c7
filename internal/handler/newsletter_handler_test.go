package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/service"
)

func TestNewsletterHandler_Subscribe_Success(t *testing.T) {
	var captured *model.NewsletterSubscription
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, sub *model.NewsletterSubscription) error {
			captured = sub
			sub.ID = 3
			return nil
		},
	}
	h := NewNewsletterHandler(mock)

	rec := httptest.NewRecorder()
	h.Subscribe(rec, postJSON("/api/newsletter/subscribe", `{"email":"bob@example.com","firstName":"Bob"}`))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.LastName != nil {
		t.Errorf("expected lastName nil, got %q", *captured.LastName)
	}

	var resp subscribeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Successfully subscribed to newsletter!" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Subscription.ID != 3 || resp.Subscription.Email != "bob@example.com" {
		t.Errorf("unexpected subscription %+v", resp.Subscription)
	}
	if resp.Subscription.FirstName == nil || *resp.Subscription.FirstName != "Bob" {
		t.Errorf("expected firstName Bob, got %v", resp.Subscription.FirstName)
	}
}

func TestNewsletterHandler_Subscribe_Duplicate(t *testing.T) {
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, sub *model.NewsletterSubscription) error {
			return fmt.Errorf("subscribe: %w", service.ErrAlreadySubscribed)
		},
	}
	h := NewNewsletterHandler(mock)

	rec := httptest.NewRecorder()
	h.Subscribe(rec, postJSON("/api/newsletter/subscribe", `{"email":"bob@example.com"}`))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var resp messageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "This email is already subscribed to our newsletter." {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestNewsletterHandler_Subscribe_InvalidEmail(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{})

	for _, body := range []string{`{}`, `{"email":""}`, `{"email":"nope"}`} {
		rec := httptest.NewRecorder()
		h.Subscribe(rec, postJSON("/api/newsletter/subscribe", body))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
			continue
		}
		if resp := decodeValidation(t, rec); !hasFieldError(resp, "email") {
			t.Errorf("%s: expected email error, got %+v", body, resp.Errors)
		}
	}
}

func TestNewsletterHandler_Subscribe_ServiceError(t *testing.T) {
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, sub *model.NewsletterSubscription) error {
			return errors.New("db down")
		},
	}
	h := NewNewsletterHandler(mock)

	rec := httptest.NewRecorder()
	h.Subscribe(rec, postJSON("/api/newsletter/subscribe", `{"email":"bob@example.com"}`))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp messageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "An error occurred while processing your subscription." {
		t.Errorf("unexpected message %q", resp.Message)
	}
}
