package domain

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// VerificationRequest is the immutable value submitted to the verification
// service. It is constructed once per invocation and never mutated.
type VerificationRequest struct {
	Repository  string
	CommitHash  string // optional; empty means HEAD
	ProgramID   Pubkey
	LibraryName string // optional
	BPFFlag     bool
	MountPath   string // optional; empty and absent are the same thing
	BaseImage   string // optional
	CargoArgs   []string
}

// Fingerprint returns a stable identity for the request, used to key the
// local result store. Fields are separated by NUL bytes so adjacent values
// cannot alias.
func (r VerificationRequest) Fingerprint() string {
	h := xxhash.New()
	sep := []byte{0}

	_, _ = h.WriteString(r.Repository)
	_, _ = h.Write(sep)
	_, _ = h.WriteString(r.CommitHash)
	_, _ = h.Write(sep)
	_, _ = h.WriteString(r.ProgramID.String())
	_, _ = h.Write(sep)
	_, _ = h.WriteString(r.LibraryName)
	_, _ = h.Write(sep)
	_, _ = h.WriteString(strconv.FormatBool(r.BPFFlag))
	_, _ = h.Write(sep)
	_, _ = h.WriteString(r.MountPath)
	_, _ = h.Write(sep)
	_, _ = h.WriteString(r.BaseImage)
	_, _ = h.Write(sep)
	for _, arg := range r.CargoArgs {
		_, _ = h.WriteString(arg)
		_, _ = h.Write(sep)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
