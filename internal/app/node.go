package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hrdesk/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/hrdesk/internal/adapters/hrapi"  //nolint:depguard // Wired in app layer
	"go.trai.ch/hrdesk/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/hrdesk/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/hrdesk/internal/adapters/xlsx"   //nolint:depguard // Wired in app layer
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/core/ports"
	"go.trai.ch/hrdesk/internal/engine/directory"
	"go.trai.ch/hrdesk/internal/engine/submitter"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			hrapi.NodeID,
			directory.NodeID,
			submitter.NodeID,
			linear.NodeID,
			xlsx.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	backend, err := graft.Dep[ports.Backend](ctx)
	if err != nil {
		return nil, err
	}

	dir, err := graft.Dep[*directory.Cache](ctx)
	if err != nil {
		return nil, err
	}

	sub, err := graft.Dep[ports.Submitter](ctx)
	if err != nil {
		return nil, err
	}

	presenter, err := graft.Dep[ports.Presenter](ctx)
	if err != nil {
		return nil, err
	}

	exporter, err := graft.Dep[ports.Exporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(backend, dir, sub, presenter, exporter, log, settings), nil
}
