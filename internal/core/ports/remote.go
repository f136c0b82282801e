package ports

import (
	"context"

	"go.osec.io/solverify/internal/core/domain"
)

// RemoteVerifier is the client side of the remote verification service.
//
//go:generate mockgen -destination=mocks/remote_mock.go -package=mocks -source=remote.go
type RemoteVerifier interface {
	// Submit sends a verification request. Conflict replies are decoded into
	// the SubmitOutcome variant and are not errors; any other non-success
	// response is.
	Submit(ctx context.Context, req domain.VerificationRequest) (domain.SubmitOutcome, error)

	// Poll queries the current state of a submitted job. A transport failure
	// is fatal for the whole job; callers must not retry.
	Poll(ctx context.Context, handle domain.JobHandle) (domain.PollResult, error)
}
