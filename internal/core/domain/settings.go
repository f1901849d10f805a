package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultBaseURL is the backend root used when nothing is configured.
	DefaultBaseURL = "http://localhost:8080/api"
	// DefaultSessionCookieName is the cookie carrying the operator's session.
	DefaultSessionCookieName = "JSESSIONID"
	// DefaultRequestTimeout bounds every backend call.
	DefaultRequestTimeout = 15 * time.Second
	// DefaultCacheTTL is the freshness window of the roster snapshot.
	DefaultCacheTTL = 5 * time.Minute
	// DefaultSubmitConcurrency bounds the number of assignment requests in flight.
	DefaultSubmitConcurrency = 4
	// DefaultRetryAttempts is the number of attempts for idempotent loads.
	DefaultRetryAttempts = 3
	// DefaultRetryDelay is the initial backoff between load attempts.
	DefaultRetryDelay = 300 * time.Millisecond
	// DefaultEmailDomain completes bare corporate mailbox names.
	DefaultEmailDomain = "oryfolks.com"
	// SnapshotFileName is the roster snapshot file inside the cache directory.
	SnapshotFileName = "roster.json"
)

// Settings is the resolved client configuration.
type Settings struct {
	BaseURL           string        `validate:"required,url"`
	SessionCookieName string        `validate:"required"`
	SessionCookie     string        `validate:"-"`
	RequestTimeout    time.Duration `validate:"gt=0"`
	CacheTTL          time.Duration `validate:"gt=0"`
	SnapshotPath      string        `validate:"-"`
	SubmitConcurrency int           `validate:"gte=1,lte=64"`
	RetryAttempts     int           `validate:"gte=1,lte=10"`
	RetryDelay        time.Duration `validate:"gte=0"`
	EmailDomain       string        `validate:"omitempty,hostname"`
}

// DefaultSettings returns the settings used when no configuration is present.
func DefaultSettings() Settings {
	return Settings{
		BaseURL:           DefaultBaseURL,
		SessionCookieName: DefaultSessionCookieName,
		RequestTimeout:    DefaultRequestTimeout,
		CacheTTL:          DefaultCacheTTL,
		SnapshotPath:      DefaultSnapshotPath(),
		SubmitConcurrency: DefaultSubmitConcurrency,
		RetryAttempts:     DefaultRetryAttempts,
		RetryDelay:        DefaultRetryDelay,
		EmailDomain:       DefaultEmailDomain,
	}
}

// DefaultSnapshotPath returns the snapshot location under the user cache directory,
// or an empty path when no cache directory is available.
func DefaultSnapshotPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hrdesk", SnapshotFileName)
}
