package config

import "time"

// FileName is the config file looked up from the working directory upwards.
const FileName = "hrdesk.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HRDESK_"

// SupportedVersion is the only config file version understood.
const SupportedVersion = "1"

// envFiles are read from the config directory, later files winning.
var envFiles = []string{".env", ".env.local"}

// File represents the structure of hrdesk.yaml.
type File struct {
	Version        string     `yaml:"version"`
	BaseURL        string     `yaml:"baseUrl"`
	Session        SessionDTO `yaml:"session"`
	RequestTimeout string     `yaml:"requestTimeout"`
	CacheTTL       string     `yaml:"cacheTtl"`
	SnapshotPath   string     `yaml:"snapshotPath"`
	Submit         SubmitDTO  `yaml:"submit"`
	Retry          RetryDTO   `yaml:"retry"`
	EmailDomain    string     `yaml:"emailDomain"`
}

// SessionDTO holds the ambient session credentials.
type SessionDTO struct {
	CookieName string `yaml:"cookieName"`
	Cookie     string `yaml:"cookie"`
}

// SubmitDTO tunes persistence fan-out.
type SubmitDTO struct {
	Concurrency int `yaml:"concurrency"`
}

// RetryDTO tunes retries of idempotent loads.
type RetryDTO struct {
	Attempts int    `yaml:"attempts"`
	Delay    string `yaml:"delay"`
}

// envOverrides are the HRDESK_* variables. Unset variables leave the field untouched.
type envOverrides struct {
	BaseURL           string        `env:"BASE_URL"`
	SessionCookieName string        `env:"SESSION_COOKIE_NAME"`
	SessionCookie     string        `env:"SESSION_COOKIE"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT"`
	CacheTTL          time.Duration `env:"CACHE_TTL"`
	SnapshotPath      string        `env:"SNAPSHOT_PATH"`
	SubmitConcurrency int           `env:"SUBMIT_CONCURRENCY"`
	RetryAttempts     int           `env:"RETRY_ATTEMPTS"`
	RetryDelay        time.Duration `env:"RETRY_DELAY"`
	EmailDomain       string        `env:"EMAIL_DOMAIN"`
}
