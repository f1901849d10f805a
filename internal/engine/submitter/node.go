package submitter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hrdesk/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hrdesk/internal/adapters/hrapi"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hrdesk/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/core/ports"
)

// NodeID is the unique identifier for the submitter Graft node.
const NodeID graft.ID = "engine.submitter"

func init() {
	graft.Register(graft.Node[ports.Submitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			hrapi.NodeID,
			config.SettingsNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Submitter, error) {
			backend, err := graft.Dep[ports.Backend](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(backend, log, settings.SubmitConcurrency), nil
		},
	})
}
