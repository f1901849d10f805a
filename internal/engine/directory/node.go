package directory

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/hrdesk/internal/adapters/config"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hrdesk/internal/adapters/hrapi"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hrdesk/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hrdesk/internal/adapters/snapshot" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/core/ports"
)

// NodeID is the unique identifier for the roster cache Graft node.
const NodeID graft.ID = "engine.directory"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			hrapi.NodeID,
			snapshot.NodeID,
			config.SettingsNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			backend, err := graft.Dep[ports.Backend](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.SnapshotStore](ctx)
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

			return New(backend, store, clockwork.NewRealClock(), settings.CacheTTL, log), nil
		},
	})
}
