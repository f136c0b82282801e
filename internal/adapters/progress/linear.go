package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
	"go.osec.io/solverify/internal/ui/output"
)

// heartbeatEvery spaces the "still waiting" lines in linear mode so CI logs
// stay readable.
const heartbeatEvery = 30 * time.Second

// Linear is the reporter for CI and other non-interactive environments. It
// prints chronological lines instead of animating.
type Linear struct {
	w      io.Writer
	term   *termenv.Output
	tick   time.Duration
	start  time.Time
	result chan bool
	done   chan struct{}
}

// NewLinear creates a linear reporter writing to w. Colors are limited to
// plain ANSI so CI log viewers render them.
func NewLinear(w io.Writer) *Linear {
	return &Linear{
		w:      w,
		term:   output.New(w, termenv.WithProfile(output.ColorProfileANSI())),
		tick:   100 * time.Millisecond,
		result: make(chan bool, 1),
		done:   make(chan struct{}),
	}
}

// Start begins the heartbeat loop. It does not block.
func (l *Linear) Start(ctx context.Context) {
	l.start = time.Now()
	fmt.Fprintln(l.w, WaitingMessage)

	go func() {
		defer close(l.done)

		ticker := time.NewTicker(l.tick)
		defer ticker.Stop()

		lastBeat := l.start
		for {
			select {
			case success := <-l.result:
				summarize(l.term, success, time.Since(l.start))
				return
			case <-ctx.Done():
				// Guard against a poller that died before sending: exit
				// without a summary instead of hanging forever.
				return
			case now := <-ticker.C:
				if now.Sub(lastBeat) >= heartbeatEvery {
					lastBeat = now
					fmt.Fprintf(l.w, "Still waiting... (%s elapsed)\n", time.Since(l.start).Round(time.Second))
				}
			}
		}
	}()
}

// Finish delivers the one-shot terminal signal and blocks until the summary
// line has been printed.
func (l *Linear) Finish(success bool) {
	select {
	case l.result <- success:
	default:
		// Signal already delivered; Finish is one-shot.
	}
	<-l.done
}
