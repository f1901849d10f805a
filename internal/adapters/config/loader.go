// Package config resolves the hrdesk client settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
// Precedence, lowest first: defaults, hrdesk.yaml, .env files, process environment.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
	// Environ returns the process environment. Defaults to os.Environ.
	Environ func() []string

	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		FS:       NewOSFS(),
		Environ:  os.Environ,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load resolves the settings for cwd.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	configPath, err := l.DiscoverConfigPath(cwd)
	if err != nil {
		return domain.Settings{}, err
	}

	envDir := cwd
	if configPath != "" {
		if err := l.applyFile(configPath, &settings); err != nil {
			return domain.Settings{}, zerr.With(err, "path", configPath)
		}
		envDir = filepath.Dir(configPath)
	}

	if err := l.applyEnv(envDir, &settings); err != nil {
		return domain.Settings{}, err
	}

	if err := l.validate.Struct(settings); err != nil {
		return domain.Settings{}, errors.Join(domain.ErrConfigInvalid, err)
	}

	return settings, nil
}

// DiscoverConfigPath walks up from cwd to the nearest hrdesk.yaml.
// Returns an empty path if none exists.
func (l *Loader) DiscoverConfigPath(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "resolve working directory"), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, FileName)
		if info, statErr := l.FS.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) applyFile(configPath string, settings *domain.Settings) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.Join(domain.ErrConfigParseFailed, err)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", FileName, file.Version, SupportedVersion))
	}

	setString(&settings.BaseURL, file.BaseURL)
	setString(&settings.SessionCookieName, file.Session.CookieName)
	setString(&settings.SessionCookie, file.Session.Cookie)
	setString(&settings.EmailDomain, file.EmailDomain)

	if file.SnapshotPath != "" {
		settings.SnapshotPath = resolvePath(filepath.Dir(configPath), file.SnapshotPath)
	}
	if file.Submit.Concurrency != 0 {
		settings.SubmitConcurrency = file.Submit.Concurrency
	}
	if file.Retry.Attempts != 0 {
		settings.RetryAttempts = file.Retry.Attempts
	}

	durations := []struct {
		key    string
		raw    string
		target *time.Duration
	}{
		{"requestTimeout", file.RequestTimeout, &settings.RequestTimeout},
		{"cacheTtl", file.CacheTTL, &settings.CacheTTL},
		{"retry.delay", file.Retry.Delay, &settings.RetryDelay},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "field", d.key)
		}
		*d.target = parsed
	}

	return nil
}

func (l *Loader) applyEnv(dir string, settings *domain.Settings) error {
	environment, err := l.environment(dir)
	if err != nil {
		return err
	}

	overrides := envOverrides{
		BaseURL:           settings.BaseURL,
		SessionCookieName: settings.SessionCookieName,
		SessionCookie:     settings.SessionCookie,
		RequestTimeout:    settings.RequestTimeout,
		CacheTTL:          settings.CacheTTL,
		SnapshotPath:      settings.SnapshotPath,
		SubmitConcurrency: settings.SubmitConcurrency,
		RetryAttempts:     settings.RetryAttempts,
		RetryDelay:        settings.RetryDelay,
		EmailDomain:       settings.EmailDomain,
	}

	if err := env.ParseWithOptions(&overrides, env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	}); err != nil {
		return errors.Join(domain.ErrConfigEnvFailed, err)
	}

	*settings = domain.Settings{
		BaseURL:           overrides.BaseURL,
		SessionCookieName: overrides.SessionCookieName,
		SessionCookie:     overrides.SessionCookie,
		RequestTimeout:    overrides.RequestTimeout,
		CacheTTL:          overrides.CacheTTL,
		SnapshotPath:      overrides.SnapshotPath,
		SubmitConcurrency: overrides.SubmitConcurrency,
		RetryAttempts:     overrides.RetryAttempts,
		RetryDelay:        overrides.RetryDelay,
		EmailDomain:       overrides.EmailDomain,
	}
	return nil
}

// environment merges the .env files found in dir under the process environment.
func (l *Loader) environment(dir string) (map[string]string, error) {
	existing := make([]string, 0, len(envFiles))
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := l.FS.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}

	merged := make(map[string]string)
	if len(existing) > 0 {
		fromFiles, err := godotenv.Read(existing...)
		if err != nil {
			return nil, errors.Join(domain.ErrConfigEnvFailed, err)
		}
		merged = fromFiles
	}

	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}
	for _, kv := range environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok {
			merged[key] = value
		}
	}

	return merged, nil
}

func setString(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func resolvePath(baseDir, path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}
