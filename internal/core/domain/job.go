package domain

import "strings"

// JobStatus is the client-side view of a remote verification job. Transitions
// are monotonic toward a terminal state: once Completed, Failed or Unknown is
// observed, polling stops permanently for that handle.
type JobStatus string

const (
	// JobInProgress means the service is still building and comparing.
	JobInProgress JobStatus = "in_progress"
	// JobCompleted means the service finished and produced a comparison.
	JobCompleted JobStatus = "completed"
	// JobFailed means the service finished with a failure message.
	JobFailed JobStatus = "failed"
	// JobUnknown is any state the service reported that we do not recognize.
	JobUnknown JobStatus = "unknown"
)

// ParseJobStatus maps a service-reported status string onto the four-state
// model. Anything unrecognized collapses to JobUnknown.
func ParseJobStatus(s string) JobStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in_progress", "inprogress", "processing":
		return JobInProgress
	case "completed", "complete", "success":
		return JobCompleted
	case "failed", "failure", "error":
		return JobFailed
	default:
		return JobUnknown
	}
}

// Terminal reports whether no further polling may occur for this status.
func (s JobStatus) Terminal() bool {
	return s != JobInProgress
}

// JobHandle identifies a submitted verification job. It is only valid for the
// service instance that issued it and is never reused across submissions.
type JobHandle struct {
	RequestID string
}

// JobOutcome carries the terminal payload of a job. OnChainHash,
// ExecutableHash and RepoURL are set for completed jobs; Message is set for
// failed ones.
type JobOutcome struct {
	OnChainHash    string
	ExecutableHash string
	RepoURL        string
	Message        string
}

// PollResult is one observation of a job's state.
type PollResult struct {
	Status  JobStatus
	Outcome *JobOutcome
}
