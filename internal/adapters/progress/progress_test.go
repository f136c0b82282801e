package progress_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.osec.io/solverify/internal/adapters/detector"
	"go.osec.io/solverify/internal/adapters/progress"
)

// syncBuffer serializes writes from the reporter goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNew_SelectsRendererByMode(t *testing.T) {
	var buf syncBuffer
	_, isLinear := progress.New(detector.ModeLinear, &buf).(*progress.Linear)
	assert.True(t, isLinear)

	_, isSpinner := progress.New(detector.ModeTUI, &buf).(*progress.Spinner)
	assert.True(t, isSpinner)

	_, autoIsLinear := progress.New(detector.ModeAuto, &buf).(*progress.Linear)
	assert.True(t, autoIsLinear, "auto falls back to linear when not resolved upstream")
}

func TestLinear_SuccessSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf syncBuffer
	l := progress.NewLinear(&buf)

	l.Start(context.Background())
	l.Finish(true)

	out := buf.String()
	assert.Contains(t, out, progress.WaitingMessage)
	assert.Contains(t, out, "Process completed.")
	assert.Contains(t, out, "Done in")
}

func TestLinear_FailureSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf syncBuffer
	l := progress.NewLinear(&buf)

	l.Start(context.Background())
	l.Finish(false)

	out := buf.String()
	assert.Contains(t, out, "Request processing failed.")
	assert.Contains(t, out, "Time elapsed:")
}

func TestLinear_SummaryIsLastLine(t *testing.T) {
	var buf syncBuffer
	l := progress.NewLinear(&buf)

	l.Start(context.Background())
	time.Sleep(10 * time.Millisecond)
	l.Finish(true)

	// Finish blocks until the summary is printed, so nothing may follow it.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "Process completed.")
}

func TestLinear_FinishIsIdempotent(t *testing.T) {
	var buf syncBuffer
	l := progress.NewLinear(&buf)

	l.Start(context.Background())
	l.Finish(true)
	l.Finish(true)

	assert.Equal(t, 1, strings.Count(buf.String(), "Process completed."))
}

func TestLinear_ContextCancellationUnblocksFinish(t *testing.T) {
	var buf syncBuffer
	l := progress.NewLinear(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	l.Start(ctx)
	cancel()

	finished := make(chan struct{})
	go func() {
		l.Finish(false)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Finish hung after context cancellation")
	}
}
