package ports

import "context"

// Workspace provisions scoped checkout directories for local verification.
//
//go:generate mockgen -destination=mocks/workspace_mock.go -package=mocks -source=workspace.go
type Workspace interface {
	// Clone checks out repoURL (at commit, when non-empty) into a fresh
	// temporary directory. The returned cleanup removes the directory and
	// must be called on every exit path.
	Clone(ctx context.Context, repoURL, commit string) (dir string, cleanup func() error, err error)
}
