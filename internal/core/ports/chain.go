package ports

import (
	"context"

	"go.osec.io/solverify/internal/core/domain"
)

// ChainReader fetches raw on-chain account bytes. Both methods return the
// buffer with the fixed account metadata prefix already stripped; the result
// still carries the allocation zero padding and is consumed by the hash
// normalizer.
//
//go:generate mockgen -destination=mocks/chain_mock.go -package=mocks -source=chain.go
type ChainReader interface {
	// ProgramData resolves the program-data address for a deployed program
	// and returns its executable bytes.
	ProgramData(ctx context.Context, programID domain.Pubkey) ([]byte, error)

	// BufferData returns the executable bytes held by a buffer account.
	BufferData(ctx context.Context, address domain.Pubkey) ([]byte, error)
}
