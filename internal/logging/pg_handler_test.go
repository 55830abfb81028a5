package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"agendly-backend/internal/models"
)

func newBufferedHandler() *PGHandler {
	// No db and no flush loop: Handle only appends to the buffer, which
	// is all these tests inspect.
	return &PGHandler{buffer: make([]models.SystemLog, 0, 50)}
}

func record(level slog.Level, msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), level, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestPGHandlerOnlyAcceptsErrorAndAbove(t *testing.T) {
	h := newBufferedHandler()
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("INFO should not be persisted")
	}
	if h.Enabled(ctx, slog.LevelWarn) {
		t.Error("WARN should not be persisted")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("ERROR must be persisted")
	}
}

func TestPGHandlerMapsKnownAttrsToColumns(t *testing.T) {
	h := newBufferedHandler()

	err := h.Handle(context.Background(), record(slog.LevelError, "tenant cascade delete failed",
		slog.String("tenant_id", "0b9f2c9e-1111-2222-3333-444455556666"),
		slog.String("action", "tenant.delete"),
		slog.String("error", "connection reset"),
		slog.String("request_id", "req-42"),
	))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(h.buffer) != 1 {
		t.Fatalf("buffered %d entries, want 1", len(h.buffer))
	}
	entry := h.buffer[0]
	if entry.Message != "tenant cascade delete failed" {
		t.Errorf("message = %q", entry.Message)
	}
	if entry.TenantID != "0b9f2c9e-1111-2222-3333-444455556666" {
		t.Errorf("tenant_id = %q", entry.TenantID)
	}
	if entry.Action != "tenant.delete" {
		t.Errorf("action = %q", entry.Action)
	}
	if entry.Error != "connection reset" {
		t.Errorf("error = %q", entry.Error)
	}
	// Unknown attrs land in the extra jsonb blob.
	if len(entry.Extra) == 0 {
		t.Error("request_id should be captured in extra")
	}
}
