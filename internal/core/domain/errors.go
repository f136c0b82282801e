package domain

import "go.trai.ch/zerr"

var (
	// ErrVerificationMismatch is returned when the locally built executable
	// digest differs from the on-chain one. It is a first-class failure
	// outcome, not a crash; the process still exits non-zero.
	ErrVerificationMismatch = zerr.New("executable hash mismatch")

	// ErrVerificationFailed is returned when the remote service reports a
	// terminal Failed or Unknown job state.
	ErrVerificationFailed = zerr.New("program has not been verified")

	// ErrSubmitRejected is returned when the service rejects a submission
	// with a non-conflict error response.
	ErrSubmitRejected = zerr.New("verification request rejected")

	// ErrPollFailed is returned on a transport failure while querying job
	// status. Nothing is retried; the run terminates.
	ErrPollFailed = zerr.New("job status query failed")

	// ErrPollDeadlineExceeded is returned when a configured maximum polling
	// duration elapses before the job reaches a terminal state.
	ErrPollDeadlineExceeded = zerr.New("polling deadline exceeded")

	// ErrBuildFailed is returned when the external build tool fails. The
	// tool's diagnostic output is passed through verbatim.
	ErrBuildFailed = zerr.New("deterministic build failed")

	// ErrRPCFailure is returned when on-chain account data cannot be fetched.
	ErrRPCFailure = zerr.New("rpc request failed")

	// ErrAccountNotFound is returned when the requested on-chain account does
	// not exist or holds no data.
	ErrAccountNotFound = zerr.New("account not found")

	// ErrArtifactNotFound is returned when the build deposited no executable
	// at the expected location.
	ErrArtifactNotFound = zerr.New("no build artifact found")

	// ErrCloneFailed is returned when the repository cannot be cloned.
	ErrCloneFailed = zerr.New("repository clone failed")

	// ErrInvalidPubkey is returned for malformed on-chain addresses.
	ErrInvalidPubkey = zerr.New("invalid address")

	// ErrInvalidDigest is returned for malformed digest strings.
	ErrInvalidDigest = zerr.New("invalid digest")

	// ErrNoViableBump is returned when no off-curve derived address exists.
	ErrNoViableBump = zerr.New("unable to find a viable program address bump seed")

	// ErrConfigInvalid is returned when solverify.yaml cannot be parsed.
	ErrConfigInvalid = zerr.New("invalid configuration file")

	// ErrStoreCorrupt is returned when a stored result cannot be decoded.
	ErrStoreCorrupt = zerr.New("result store entry corrupt")
)
