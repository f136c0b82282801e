package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.osec.io/solverify/internal/adapters/logger"
	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
)

// NodeID is the unique identifier for the config Graft node. It resolves the
// *domain.Config directly so downstream nodes can depend on settled values.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log).Load()
		},
	})
}
