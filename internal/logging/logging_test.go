package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid json log line %q: %v", buf.String(), err)
	}
	return m
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_ErrorIncludesStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO")
	logger.Error("boom")

	m := decode(t, &buf)
	if _, ok := m["stacktrace"]; !ok {
		t.Error("expected stacktrace on ERROR record")
	}
}

func TestNew_RequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO")
	ctx := WithRequestID(context.Background(), "01HX")
	logger.InfoContext(ctx, "hello")

	m := decode(t, &buf)
	if m["request_id"] != "01HX" {
		t.Errorf("expected request_id 01HX, got %v", m["request_id"])
	}
	if _, ok := m["stacktrace"]; ok {
		t.Error("did not expect stacktrace on INFO record")
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "WARN")
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected INFO to be filtered, got %q", buf.String())
	}
}
