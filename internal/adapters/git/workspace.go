// Package git provisions scoped repository checkouts for local verification.
package git

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Workspace implements ports.Workspace by cloning into freshly created
// temporary directories. Each run owns its directory exclusively; cleanup is
// the caller's contract on every exit path.
type Workspace struct {
	logger ports.Logger
	run    func(ctx context.Context, name string, args ...string) error
}

var _ ports.Workspace = (*Workspace)(nil)

// NewWorkspace creates a Workspace that shells out to git.
func NewWorkspace(logger ports.Logger) *Workspace {
	w := &Workspace{logger: logger}
	w.run = w.execStream
	return w
}

// WithRunner overrides command execution. Used in tests.
func (w *Workspace) WithRunner(run func(ctx context.Context, name string, args ...string) error) *Workspace {
	w.run = run
	return w
}

// Clone checks out repoURL into a new scoped temporary directory, optionally
// pinned to commit. On any failure the directory is removed before returning.
func (w *Workspace) Clone(ctx context.Context, repoURL, commit string) (string, func() error, error) {
	dir, err := os.MkdirTemp("", "solverify-clone-*")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to create workspace directory")
	}
	cleanup := func() error { return os.RemoveAll(dir) }

	if err := w.run(ctx, "git", "clone", repoURL, dir); err != nil {
		_ = cleanup()
		return "", nil, zerr.With(zerr.Wrap(domain.ErrCloneFailed, err.Error()), "repository", repoURL)
	}

	if commit != "" {
		if err := w.run(ctx, "git", "-C", dir, "checkout", commit); err != nil {
			_ = cleanup()
			return "", nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrCloneFailed, err.Error()),
				"repository", repoURL),
				"commit", commit,
			)
		}
	}

	return dir, cleanup, nil
}

func (w *Workspace) execStream(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Arguments are assembled above
	cmd.Stdout = &logWriter{logger: w.logger}
	cmd.Stderr = &logWriter{logger: w.logger}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}
	return nil
}

// logWriter forwards git output line by line to the logger. Git writes
// progress to stderr, so everything lands at info level.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		w.logger.Info(line)
	}
	return len(p), nil
}
