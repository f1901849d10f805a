package xlsx

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hrdesk/internal/core/ports"
)

// NodeID is the unique identifier for the workbook exporter Graft node.
const NodeID graft.ID = "adapter.exporter"

func init() {
	graft.Register(graft.Node[ports.Exporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Exporter, error) {
			return NewExporter(), nil
		},
	})
}
