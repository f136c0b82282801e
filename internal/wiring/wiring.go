// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.osec.io/solverify/internal/adapters/config"
	_ "go.osec.io/solverify/internal/adapters/docker"
	_ "go.osec.io/solverify/internal/adapters/fs"
	_ "go.osec.io/solverify/internal/adapters/git"
	_ "go.osec.io/solverify/internal/adapters/logger"
	_ "go.osec.io/solverify/internal/adapters/remote"
	_ "go.osec.io/solverify/internal/adapters/rpc"
	_ "go.osec.io/solverify/internal/adapters/state"
	_ "go.osec.io/solverify/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.osec.io/solverify/internal/app"
	_ "go.osec.io/solverify/internal/engine/poller"
)
