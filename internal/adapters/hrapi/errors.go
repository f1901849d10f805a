package hrapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"go.trai.ch/hrdesk/internal/core/domain"
)

const maxMessageLen = 300

// StatusError is returned when the backend answers with a non-success status.
// It matches domain.ErrBackendRejected with errors.Is.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	status := fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, status)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, status, e.Message)
}

// Is reports whether target is domain.ErrBackendRejected.
func (e *StatusError) Is(target error) bool {
	return target == domain.ErrBackendRejected
}

// Retryable reports whether the status is worth retrying for idempotent requests.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// NetworkError is returned when the backend cannot be reached or the response cannot be read.
// It matches domain.ErrNetwork with errors.Is.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, domain.ErrNetwork.Error(), e.Err)
}

// Is reports whether target is domain.ErrNetwork.
func (e *NetworkError) Is(target error) bool {
	return target == domain.ErrNetwork
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// errorMessage extracts a readable message from an error body.
// The backend answers either {"message": "..."} or plain text.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			return truncate(payload.Message)
		case payload.Error != "":
			return truncate(payload.Error)
		}
	}

	text := strings.TrimSpace(string(body))
	if first, _, found := strings.Cut(text, "\n"); found {
		text = first
	}
	return truncate(text)
}

func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	n := maxMessageLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}
