package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.osec.io/solverify/internal/adapters/logger"
	"go.osec.io/solverify/internal/core/ports"
)

// NodeID is the unique identifier for the workspace Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.Workspace]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Workspace, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWorkspace(log), nil
		},
	})
}
