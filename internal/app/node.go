package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel/trace"
	"go.osec.io/solverify/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.osec.io/solverify/internal/adapters/docker"   //nolint:depguard // Wired in app layer
	"go.osec.io/solverify/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.osec.io/solverify/internal/adapters/git"      //nolint:depguard // Wired in app layer
	"go.osec.io/solverify/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.osec.io/solverify/internal/adapters/remote"   //nolint:depguard // Wired in app layer
	"go.osec.io/solverify/internal/adapters/rpc"      //nolint:depguard // Wired in app layer
	"go.osec.io/solverify/internal/adapters/state"    //nolint:depguard // Wired in app layer
	"go.osec.io/solverify/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.osec.io/solverify/internal/engine/poller"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			remote.NodeID,
			poller.NodeID,
			docker.NodeID,
			rpc.NodeID,
			fs.NodeID,
			git.NodeID,
			state.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.RemoteVerifier](ctx)
	if err != nil {
		return nil, err
	}

	jobPoller, err := graft.Dep[*poller.Poller](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}

	chain, err := graft.Dep[ports.ChainReader](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ResultStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[trace.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	mainApp := New(cfg, log, verifier, jobPoller, builder, chain, hasher, workspace, store, tracer)
	mainApp.WithChainResolver(func(rpcURL string) ports.ChainReader {
		if rpcURL == "" {
			return chain
		}
		return rpc.NewClient(rpcURL, log)
	})
	return mainApp, nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	mainApp, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.RemoteVerifier](ctx)
	if err != nil {
		return nil, err
	}

	chain, err := graft.Dep[ports.ChainReader](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ResultStore](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    mainApp,
		Logger: log,
		Remote: verifier,
		Chain:  chain,
		Hasher: hasher,
		Store:  store,
	}, nil
}
