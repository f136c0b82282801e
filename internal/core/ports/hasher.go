package ports

import "go.osec.io/solverify/internal/core/domain"

// Hasher digests local executable files.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashFile normalizes and digests the file at path.
	HashFile(path string) (domain.Digest, error)

	// FindExecutable locates the build artifact under root. libName narrows
	// the search to a specific library; empty accepts any single artifact.
	FindExecutable(root, libName string) (string, error)
}
