// Package progress implements the liveness reporter that runs alongside job
// polling. The reporter is the single auxiliary unit of concurrency in a
// remote run; the poller hands it exactly one terminal signal and the
// orchestrator joins it before printing anything else.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"go.osec.io/solverify/internal/adapters/detector"
	"go.osec.io/solverify/internal/core/ports"
	"go.osec.io/solverify/internal/ui/style"
)

// WaitingMessage is shown while the remote service works.
const WaitingMessage = "Request sent. Awaiting server response. This may take a moment..."

// New returns a Reporter for the given output mode writing to w. A nil w
// defaults to stderr so progress never interleaves with report output on
// stdout.
func New(mode detector.OutputMode, w io.Writer) ports.Reporter {
	if w == nil {
		w = os.Stderr
	}
	if mode == detector.ModeTUI {
		return NewSpinner(w)
	}
	return NewLinear(w)
}

// summarize prints the final reporter line: elapsed wall-clock time plus a
// success or failure glyph, colored per the output's profile.
func summarize(term *termenv.Output, success bool, elapsed time.Duration) {
	elapsed = elapsed.Round(time.Second)
	if success {
		glyph := term.String(style.Check).Foreground(term.Color(string(style.Green)))
		fmt.Fprintf(term, "%s Process completed. (Done in %s)\n", glyph, elapsed)
		return
	}
	glyph := term.String(style.Cross).Foreground(term.Color(string(style.Red)))
	fmt.Fprintf(term, "%s Request processing failed. (Time elapsed: %s)\n", glyph, elapsed)
}
