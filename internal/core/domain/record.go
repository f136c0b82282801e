package domain

import "time"

// VerificationRecord is one remembered verification outcome, keyed by the
// request fingerprint in the local result store.
type VerificationRecord struct {
	Fingerprint    string    `json:"fingerprint"`
	ProgramID      string    `json:"program_id"`
	Repository     string    `json:"repository"`
	CommitHash     string    `json:"commit_hash,omitempty"`
	OnChainHash    string    `json:"on_chain_hash"`
	ExecutableHash string    `json:"executable_hash"`
	Verified       bool      `json:"verified"`
	Remote         bool      `json:"remote"`
	CheckedAt      time.Time `json:"checked_at"`
}
