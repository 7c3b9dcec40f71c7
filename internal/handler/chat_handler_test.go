package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChatHandler_Chat_Success(t *testing.T) {
	var gotSession, gotMessage string
	h := NewChatHandler(&mockChatService{
		handleFunc: func(ctx context.Context, sessionID, message string) (string, string, error) {
			gotSession, gotMessage = sessionID, message
			return "Hi there", "chat_abc", nil
		},
	})

	rec := httptest.NewRecorder()
	h.Chat(rec, postJSON("/api/chat", `{"message":"hello"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotSession != "" || gotMessage != "hello" {
		t.Errorf("unexpected call (%q, %q)", gotSession, gotMessage)
	}
	var resp chatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Response != "Hi there" || resp.SessionID != "chat_abc" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestChatHandler_Chat_PassesSessionID(t *testing.T) {
	var gotSession string
	h := NewChatHandler(&mockChatService{
		handleFunc: func(ctx context.Context, sessionID, message string) (string, string, error) {
			gotSession = sessionID
			return "ok", sessionID, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Chat(rec, postJSON("/api/chat", `{"message":"hello","sessionId":"chat_xyz"}`))

	if gotSession != "chat_xyz" {
		t.Errorf("expected chat_xyz, got %q", gotSession)
	}
}

func TestChatHandler_Chat_MessageRequired(t *testing.T) {
	called := false
	h := NewChatHandler(&mockChatService{
		handleFunc: func(ctx context.Context, sessionID, message string) (string, string, error) {
			called = true
			return "", "", nil
		},
	})

	for _, body := range []string{`{}`, `{"message":""}`, `{"message":42}`, `not json`} {
		rec := httptest.NewRecorder()
		h.Chat(rec, postJSON("/api/chat", body))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
			continue
		}
		var resp chatError
		json.NewDecoder(rec.Body).Decode(&resp)
		if resp.Error != "Message is required" {
			t.Errorf("%s: unexpected error %q", body, resp.Error)
		}
	}
	if called {
		t.Error("service must not be called without a message")
	}
}

func TestChatHandler_Chat_SessionIDTooLong(t *testing.T) {
	h := NewChatHandler(&mockChatService{})

	body := `{"message":"hi","sessionId":"` + strings.Repeat("s", 129) + `"}`
	rec := httptest.NewRecorder()
	h.Chat(rec, postJSON("/api/chat", body))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestChatHandler_Chat_ServiceError(t *testing.T) {
	h := NewChatHandler(&mockChatService{
		handleFunc: func(ctx context.Context, sessionID, message string) (string, string, error) {
			return "", "chat_1", errors.New("store down")
		},
	})

	rec := httptest.NewRecorder()
	h.Chat(rec, postJSON("/api/chat", `{"message":"hello"}`))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp chatError
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Error != chatUnavailable {
		t.Errorf("unexpected error %q", resp.Error)
	}
}

func TestChatHandler_NewSession(t *testing.T) {
	h := NewChatHandler(&mockChatService{
		newSessionFunc: func(ctx context.Context) (string, error) { return "chat_new", nil },
	})

	rec := httptest.NewRecorder()
	h.NewSession(rec, httptest.NewRequest(http.MethodPost, "/api/chat/session", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp sessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.SessionID != "chat_new" {
		t.Errorf("expected chat_new, got %q", resp.SessionID)
	}
}

func TestChatHandler_NewSession_Error(t *testing.T) {
	h := NewChatHandler(&mockChatService{
		newSessionFunc: func(ctx context.Context) (string, error) { return "", errors.New("exhausted") },
	})

	rec := httptest.NewRecorder()
	h.NewSession(rec, httptest.NewRequest(http.MethodPost, "/api/chat/session", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
