// Package poller implements the job status polling loop.
package poller

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Policy bounds the polling loop.
type Policy struct {
	// Interval is the rest between status queries while the job is in
	// progress.
	Interval time.Duration
	// MaxWait caps the total polling time. Zero keeps the historical
	// unbounded behavior.
	MaxWait time.Duration
}

// DefaultPolicy matches the service's expected cadence with no deadline.
var DefaultPolicy = Policy{Interval: domain.DefaultPollInterval}

// Poller drives a submitted job to a terminal state. The only self-loop is
// on InProgress; Completed, Failed and Unknown stop polling permanently. A
// transport failure is fatal and never retried.
type Poller struct {
	remote ports.RemoteVerifier
	clock  clockwork.Clock
	policy Policy
}

// Option configures a Poller.
type Option func(*Poller)

// WithPolicy overrides the polling policy.
func WithPolicy(p Policy) Option {
	return func(pl *Poller) {
		if p.Interval > 0 {
			pl.policy.Interval = p.Interval
		}
		pl.policy.MaxWait = p.MaxWait
	}
}

// WithClock overrides the clock. Used in tests.
func WithClock(c clockwork.Clock) Option {
	return func(pl *Poller) { pl.clock = c }
}

// New creates a Poller for the given remote verifier.
func New(remote ports.RemoteVerifier, opts ...Option) *Poller {
	p := &Poller{
		remote: remote,
		clock:  clockwork.NewRealClock(),
		policy: DefaultPolicy,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run polls the handle until a terminal state, a transport error, policy
// exhaustion or context cancellation. The state after a successful submit is
// implicitly InProgress, so the first query happens immediately.
func (p *Poller) Run(ctx context.Context, handle domain.JobHandle) (domain.PollResult, error) {
	start := p.clock.Now()

	for {
		result, err := p.remote.Poll(ctx, handle)
		if err != nil {
			return domain.PollResult{}, err
		}
		if result.Status.Terminal() {
			return result, nil
		}

		if p.policy.MaxWait > 0 && p.clock.Since(start)+p.policy.Interval > p.policy.MaxWait {
			return domain.PollResult{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrPollDeadlineExceeded, ""),
				"request_id", handle.RequestID),
				"max_wait", p.policy.MaxWait.String(),
			)
		}

		select {
		case <-ctx.Done():
			return domain.PollResult{}, zerr.Wrap(ctx.Err(), "polling canceled")
		case <-p.clock.After(p.policy.Interval):
		}
	}
}
