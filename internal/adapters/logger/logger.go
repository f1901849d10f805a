package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/hrdesk/internal/core/ports"
)

// maxErrorDepth bounds error chain traversal.
const maxErrorDepth = 64

// messager is an error that reports its own message without its cause chain.
// zerr.Error satisfies it.
type messager interface {
	Message() string
}

// multiUnwrapper is an error built with errors.Join.
type multiUnwrapper interface {
	Unwrap() []error
}

// errorEntry is one rendered link of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing pretty output to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})),
		output: os.Stderr,
	}
}

// SetOutput redirects the logger, keeping the current format. A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuildLocked()
}

// SetJSON switches between JSON and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuildLocked()
}

func (l *Logger) rebuildLocked() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = NewPrettyHandler(w, opts)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain. Nil errors are ignored.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries flattens an error into its messages, outermost first.
// Joined errors contribute each of their members in order.
func collectErrorEntries(err error) []errorEntry {
	return collect(err, 0)
}

func collect(err error, depth int) []errorEntry {
	var entries []errorEntry
	var pending map[string]string

	for current := err; current != nil && depth < maxErrorDepth; depth++ {
		if joined, ok := current.(multiUnwrapper); ok {
			for _, member := range joined.Unwrap() {
				entries = append(entries, collect(member, depth+1)...)
			}
			if len(entries) > 0 && pending != nil {
				entries[0].metadata = mergeMetadata(pending, entries[0].metadata)
			}
			return entries
		}

		m, ok := current.(messager)
		if !ok {
			return append(entries, errorEntry{message: current.Error(), metadata: pending})
		}

		meta := mergeMetadata(pending, metadataOf(current))
		if m.Message() == "" {
			pending = meta
			current = errors.Unwrap(current)
			continue
		}

		entries = append(entries, errorEntry{message: m.Message(), metadata: meta})
		pending = nil
		current = errors.Unwrap(current)
	}

	return entries
}

// metadataOf reads the key-value pairs a zerr.Error exposes through slog.LogValuer.
func metadataOf(err error) map[string]string {
	lv, ok := err.(slog.LogValuer)
	if !ok {
		return nil
	}

	v := lv.LogValue()
	if v.Kind() != slog.KindGroup {
		return nil
	}

	var meta map[string]string
	for _, attr := range v.Group() {
		switch attr.Key {
		case "msg", "cause", "stacktrace":
			continue
		}
		if meta == nil {
			meta = make(map[string]string)
		}
		meta[attr.Key] = attr.Value.String()
	}
	return meta
}

func mergeMetadata(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// formatErrorEntries renders entries as an "Error:" line followed by indented causes.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		first := msgLines[0] + formatMetadata(entry.metadata)

		if i == 0 {
			lines = append(lines, "Error: "+first)
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+first)
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]string) string {
	if len(meta) == 0 {
		return ""
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + meta[k]
	}
	return " [" + strings.Join(parts, " ") + "]"
}
