package domain

import (
	"os"
	"path/filepath"
	"time"
)

// Built-in defaults, overridable by solverify.yaml and per-invocation flags.
const (
	DefaultRemoteURL = "https://verify.osec.io"
	DefaultRPCURL    = "https://api.mainnet-beta.solana.com"
	DefaultBaseImage = "ellipsislabs/solana:latest"

	// DefaultPollInterval is the rest between job status queries.
	DefaultPollInterval = 5 * time.Second
	// DefaultSubmitTimeout bounds the submission round trip. Verification
	// builds are slow, so this is on the order of hours.
	DefaultSubmitTimeout = 18000 * time.Second
)

// File permissions used across the tool.
const (
	DirPerm  = os.FileMode(0o750)
	FilePerm = os.FileMode(0o600)
)

// Config is the resolved tool configuration.
type Config struct {
	RemoteURL    string
	RPCURL       string
	BaseImage    string
	PollInterval time.Duration
	// PollMaxWait bounds the polling loop. Zero keeps the historical
	// unbounded behavior.
	PollMaxWait time.Duration
	ResultsPath string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		RemoteURL:    DefaultRemoteURL,
		RPCURL:       DefaultRPCURL,
		BaseImage:    DefaultBaseImage,
		PollInterval: DefaultPollInterval,
		ResultsPath:  DefaultResultsPath(),
	}
}

// DefaultResultsPath is where verification outcomes are recorded.
func DefaultResultsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "solverify", "results")
	}
	return filepath.Join(home, ".solverify", "results")
}
