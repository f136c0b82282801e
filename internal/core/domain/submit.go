package domain

// SubmitKind discriminates the closed set of submission outcomes. A conflict
// reply from the service is not an error; it is an alternate successful
// termination of the submission step, decoded once at the transport boundary.
type SubmitKind int

const (
	// SubmitAccepted means the service queued a new job; Handle is set.
	SubmitAccepted SubmitKind = iota
	// SubmitAlreadyVerified means an equivalent request already verified the
	// program; Outcome carries the hashes from the conflict payload.
	SubmitAlreadyVerified
	// SubmitAlreadyProcessed means an equivalent request was already handled
	// but did not verify the program. Also the fallback for conflict payloads
	// of an unrecognized shape.
	SubmitAlreadyProcessed
	// SubmitConflictError means the conflict payload carried an error message
	// from the service; Err holds it.
	SubmitConflictError
)

// SubmitOutcome is the result of submitting a verification request.
type SubmitOutcome struct {
	Kind    SubmitKind
	Handle  JobHandle   // Kind == SubmitAccepted
	Outcome *JobOutcome // Kind == SubmitAlreadyVerified
	Err     string      // Kind == SubmitConflictError
}
