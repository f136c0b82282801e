// Package main is the entry point for the solverify CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.osec.io/solverify/cmd/solverify/commands"
	"go.osec.io/solverify/internal/app"
	"go.osec.io/solverify/internal/core/domain"
	_ "go.osec.io/solverify/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrVerificationMismatch) || errors.Is(err, domain.ErrVerificationFailed) {
			// The comparison report already printed; the error carries the
			// verdict for the exit code.
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		// zerr prints a report with stack trace and metadata under %+v.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
