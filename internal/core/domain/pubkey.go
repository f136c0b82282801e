package domain

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
	"go.trai.ch/zerr"
)

// PubkeyLen is the byte length of an on-chain address.
const PubkeyLen = 32

// pdaSalt is appended when deriving program addresses so the search space
// cannot collide with ordinary signing keys.
const pdaSalt = "ProgramDerivedAddress"

// Pubkey is a 32-byte on-chain address, rendered as base58 text.
type Pubkey [PubkeyLen]byte

// UpgradeableLoaderID is the address of the upgradeable BPF loader that owns
// deployed program and program-data accounts.
var UpgradeableLoaderID = mustPubkey("BPFLoaderUpgradeab1e11111111111111111111111")

// ParsePubkey decodes a base58 address string.
func ParsePubkey(s string) (Pubkey, error) {
	var p Pubkey
	b, err := base58.Decode(s)
	if err != nil {
		return p, zerr.With(zerr.Wrap(err, "invalid address encoding"), "address", s)
	}
	if len(b) != PubkeyLen {
		return p, zerr.With(zerr.With(zerr.Wrap(ErrInvalidPubkey, ""), "address", s), "length", len(b))
	}
	copy(p[:], b)
	return p, nil
}

func mustPubkey(s string) Pubkey {
	p, err := ParsePubkey(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the base58 rendering of the address.
func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// IsZero reports whether the address is all zero bytes.
func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

// ProgramDataAddress derives the program-data account address for a deployed
// program: the program-derived address of the upgradeable loader seeded with
// the program id.
func ProgramDataAddress(programID Pubkey) (Pubkey, error) {
	addr, _, err := FindProgramAddress([][]byte{programID[:]}, UpgradeableLoaderID)
	return addr, err
}

// FindProgramAddress searches bump seeds 255 down to 0 for the first derived
// address that does not lie on the ed25519 curve, mirroring the on-chain
// derivation exactly. It returns the address and the bump seed used.
func FindProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		h := sha256.New()
		for _, seed := range seeds {
			h.Write(seed)
		}
		h.Write([]byte{uint8(bump)})
		h.Write(programID[:])
		h.Write([]byte(pdaSalt))

		var candidate Pubkey
		copy(candidate[:], h.Sum(nil))
		if !isOnCurve(candidate) {
			return candidate, uint8(bump), nil
		}
	}
	return Pubkey{}, 0, zerr.With(zerr.Wrap(ErrNoViableBump, ""), "program_id", programID.String())
}

// isOnCurve reports whether the bytes decode to a valid ed25519 curve point.
// Program-derived addresses must be off-curve so no private key can exist for
// them.
func isOnCurve(p Pubkey) bool {
	_, err := new(edwards25519.Point).SetBytes(p[:])
	return err == nil
}
