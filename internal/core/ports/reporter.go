package ports

import "context"

// Reporter gives the operator continuous liveness feedback while a remote
// job is polled. It runs as the single auxiliary unit of concurrency; the
// only shared state with the poller is the one-shot terminal signal carried
// by Finish.
//
//go:generate mockgen -destination=mocks/reporter_mock.go -package=mocks -source=reporter.go
type Reporter interface {
	// Start begins ticking. It does not block.
	Start(ctx context.Context)

	// Finish delivers the one-shot terminal signal and blocks until the
	// reporter has printed its summary line and stopped, so subsequent
	// output never interleaves with it.
	Finish(success bool)
}
