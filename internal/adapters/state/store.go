// Package state implements the on-disk store of past verification outcomes.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ResultStore using a file-per-fingerprint strategy
// under a root directory.
type Store struct {
	root string
}

var _ ports.ResultStore = (*Store)(nil)

// NewStore creates a ResultStore rooted at the given directory. The
// directory is created lazily on first Put.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Get retrieves the record for a fingerprint, or nil when none exists.
func (s *Store) Get(fingerprint string) (*domain.VerificationRecord, error) {
	data, err := os.ReadFile(s.filename(fingerprint)) //nolint:gosec // Path is root + hex fingerprint
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read result"), "fingerprint", fingerprint)
	}

	var rec domain.VerificationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreCorrupt, err.Error()), "fingerprint", fingerprint)
	}
	return &rec, nil
}

// Put stores the record, replacing any previous one for its fingerprint.
func (s *Store) Put(rec domain.VerificationRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal result")
	}

	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create result store"), "root", s.root)
	}

	if err := os.WriteFile(s.filename(rec.Fingerprint), data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write result"), "fingerprint", rec.Fingerprint)
	}
	return nil
}

func (s *Store) filename(fingerprint string) string {
	return filepath.Join(s.root, fingerprint+".json")
}
