package app

import "go.osec.io/solverify/internal/core/ports"

// Components bundles the resolved application graph for the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Remote ports.RemoteVerifier
	Chain  ports.ChainReader
	Hasher ports.Hasher
	Store  ports.ResultStore
}
