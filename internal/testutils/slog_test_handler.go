package testutils

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// LogEntry represents a simplified log record for testing
type LogEntry map[string]any

// TestSlogHandler is a memory-backed slog.Handler for testing. Handlers
// derived with WithAttrs share the captured entries.
type TestSlogHandler struct {
	store *entryStore
	attrs []slog.Attr
}

type entryStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewTestSlogHandler creates a new memory-backed slog handler
func NewTestSlogHandler() *TestSlogHandler {
	return &TestSlogHandler{store: &entryStore{}}
}

// Enabled satisfies slog.Handler interface
func (h *TestSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler interface
func (h *TestSlogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, attr := range h.attrs {
		entry[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[attr.Key] = attr.Value.Any()
		return true
	})

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.entries = append(h.store.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler interface
func (h *TestSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TestSlogHandler{
		store: h.store,
		attrs: append(slices.Clone(h.attrs), attrs...),
	}
}

// WithGroup satisfies slog.Handler interface. Groups are flattened.
func (h *TestSlogHandler) WithGroup(string) slog.Handler {
	return h
}

// Logger returns a logger writing to h.
func (h *TestSlogHandler) Logger() *slog.Logger {
	return slog.New(h)
}

// Entries returns all captured log entries
func (h *TestSlogHandler) Entries() []LogEntry {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return slices.Clone(h.store.entries)
}

// Find returns the first entry with the given message.
func (h *TestSlogHandler) Find(message string) (LogEntry, bool) {
	for _, e := range h.Entries() {
		if e["message"] == message {
			return e, true
		}
	}
	return nil, false
}

// Clear resets the captured log entries
func (h *TestSlogHandler) Clear() {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.entries = nil
}
