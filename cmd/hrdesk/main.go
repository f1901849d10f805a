// Package main is the entry point for the hrdesk client.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/hrdesk/cmd/hrdesk/commands"
	"go.trai.ch/hrdesk/internal/app"
	"go.trai.ch/hrdesk/internal/core/domain"
	_ "go.trai.ch/hrdesk/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available when initialization fails.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	err = cli.Execute(ctx)
	if closeErr := components.App.Close(context.WithoutCancel(ctx)); closeErr != nil {
		components.Logger.Warn("failed to flush traces: " + closeErr.Error())
	}
	if err != nil {
		// Per-employee failures were already reported with the save result.
		if errors.Is(err, domain.ErrSubmitIncomplete) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
