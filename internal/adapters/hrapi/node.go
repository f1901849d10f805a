package hrapi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hrdesk/internal/adapters/config"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/core/ports"
)

// NodeID is the unique identifier for the backend client Graft node.
const NodeID graft.ID = "adapter.backend"

func init() {
	graft.Register(graft.Node[ports.Backend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Backend, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			client, err := New(settings)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}
