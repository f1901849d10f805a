// Package app implements the application layer for hrdesk.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
	"go.trai.ch/hrdesk/internal/adapters/detector"
	"go.trai.ch/hrdesk/internal/adapters/telemetry"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/core/ports"
	"go.trai.ch/hrdesk/internal/engine/directory"
)

// App represents the main application logic.
type App struct {
	backend   ports.Backend
	directory *directory.Cache
	submitter ports.Submitter
	presenter ports.Presenter
	exporter  ports.Exporter
	logger    ports.Logger
	settings  domain.Settings
	validate  *validator.Validate

	teaOptions []tea.ProgramOption
	detect     func() detector.OutputMode
	shutdown   func(context.Context) error
}

// New creates a new App instance.
func New(
	backend ports.Backend,
	dir *directory.Cache,
	sub ports.Submitter,
	presenter ports.Presenter,
	exporter ports.Exporter,
	log ports.Logger,
	settings domain.Settings,
) *App {
	return &App{
		backend:   backend,
		directory: dir,
		submitter: sub,
		presenter: presenter,
		exporter:  exporter,
		logger:    log,
		settings:  settings,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		detect:    detector.DetectEnvironment,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	Verbose  bool
	JSONLogs bool
	NoCache  bool
}

type jsonSwitch interface {
	SetJSON(enable bool)
}

// Configure applies the global flags. It must be called before any operation.
func (a *App) Configure(opts GlobalOptions) {
	if sw, ok := a.logger.(jsonSwitch); ok {
		sw.SetJSON(opts.JSONLogs)
	}
	if opts.NoCache {
		a.directory.DetachStore()
	}
	if opts.Verbose && a.shutdown == nil {
		a.shutdown = telemetry.Setup(a.presenter)
	}
}

// Close flushes the tracer installed by a verbose run.
func (a *App) Close(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	shutdown := a.shutdown
	a.shutdown = nil
	return shutdown(ctx)
}
