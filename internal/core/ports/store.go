package ports

import "go.osec.io/solverify/internal/core/domain"

// ResultStore remembers past verification outcomes.
//
//go:generate mockgen -destination=mocks/store_mock.go -package=mocks -source=store.go
type ResultStore interface {
	// Get returns the record for a request fingerprint, or nil when absent.
	Get(fingerprint string) (*domain.VerificationRecord, error)

	// Put stores a record, replacing any previous one for the fingerprint.
	Put(rec domain.VerificationRecord) error
}
