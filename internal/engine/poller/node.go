package poller

import (
	"context"

	"github.com/grindlemire/graft"
	"go.osec.io/solverify/internal/adapters/config"
	"go.osec.io/solverify/internal/adapters/remote"
	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
)

// NodeID is the unique identifier for the poller Graft node.
const NodeID graft.ID = "engine.poller"

func init() {
	graft.Register(graft.Node[*Poller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, remote.NodeID},
		Run: func(ctx context.Context) (*Poller, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.RemoteVerifier](ctx)
			if err != nil {
				return nil, err
			}
			return New(verifier, WithPolicy(Policy{
				Interval: cfg.PollInterval,
				MaxWait:  cfg.PollMaxWait,
			})), nil
		},
	})
}
