// Package fs provides filesystem-backed hashing and artifact lookup.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Hasher implements ports.Hasher for local executable files.
type Hasher struct{}

var _ ports.Hasher = (*Hasher)(nil)

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile reads the file and digests it through the same normalization used
// for on-chain buffers, so a padded and an unpadded copy of the same
// executable compare equal.
func (h *Hasher) HashFile(path string) (domain.Digest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Digest{}, zerr.With(zerr.Wrap(err, "failed to read executable"), "path", path)
	}
	return domain.HashProgramData(data), nil
}

// FindExecutable locates the built shared object under root's target/deploy
// directory. A non-empty libName pins the expected file name; otherwise
// exactly one .so artifact must exist.
func (h *Hasher) FindExecutable(root, libName string) (string, error) {
	deployDir := filepath.Join(root, "target", "deploy")

	if libName != "" {
		path := filepath.Join(deployDir, libName+".so")
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, ""), "path", path)
		}
		return path, nil
	}

	var matches []string
	err := filepath.WalkDir(deployDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".so") {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, err.Error()), "dir", deployDir)
	}

	switch len(matches) {
	case 0:
		return "", zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, ""), "dir", deployDir)
	case 1:
		return matches[0], nil
	default:
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, ""),
			"dir", deployDir),
			"reason", "multiple artifacts; pass a library name",
		)
	}
}
