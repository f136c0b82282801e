package remote

import (
	"context"

	"github.com/grindlemire/graft"
	"go.osec.io/solverify/internal/adapters/config"
	"go.osec.io/solverify/internal/adapters/logger"
	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
)

// NodeID is the unique identifier for the remote verifier Graft node.
const NodeID graft.ID = "adapter.remote"

func init() {
	graft.Register(graft.Node[ports.RemoteVerifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RemoteVerifier, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.RemoteURL, log), nil
		},
	})
}
