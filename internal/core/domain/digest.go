package domain

import (
	"crypto/sha256"
	"encoding/hex"

	"go.trai.ch/zerr"
)

// Digest is a SHA-256 digest of program bytes.
type Digest [sha256.Size]byte

// HashProgramData digests program bytes after stripping trailing zero
// padding. On-chain accounts are allocated larger than the executable, so two
// byte strings that differ only in trailing zeros digest identically.
func HashProgramData(data []byte) Digest {
	return sha256.Sum256(TrimTrailingZeros(data))
}

// TrimTrailingZeros returns data without its trailing zero bytes. An all-zero
// input yields an empty slice.
func TrimTrailingZeros(data []byte) []byte {
	end := len(data)
	for end > 0 && data[end-1] == 0 {
		end--
	}
	return data[:end]
}

// ParseDigest parses a lowercase or uppercase hex digest.
func ParseDigest(s string) (Digest, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, zerr.Wrap(ErrInvalidDigest, err.Error())
	}
	if len(raw) != sha256.Size {
		return Digest{}, zerr.With(zerr.Wrap(ErrInvalidDigest, ""), "length", len(raw))
	}
	var d Digest
	copy(d[:], raw)
	return d, nil
}

// String returns the lowercase hex encoding.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Equal reports whether two digests are byte-identical.
func (d Digest) Equal(other Digest) bool {
	return d == other
}
