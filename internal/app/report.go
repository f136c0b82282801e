package app

import (
	"fmt"
	"io"

	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/ui/style"
)

const (
	checkIcon = style.Check
	crossIcon = style.Cross
)

// printLocalComparison prints the two digests side by side after a local or
// image-based build.
func printLocalComparison(w io.Writer, executable, onChain domain.Digest) {
	fmt.Fprintf(w, "Executable hash: %s\n", executable)
	fmt.Fprintf(w, "On-chain hash:   %s\n", onChain)
}

// printRemoteSuccess prints the detailed report for a completed remote job.
func printRemoteSuccess(w io.Writer, programID domain.Pubkey, outcome *domain.JobOutcome) {
	fmt.Fprintf(w, "Program %s has been verified. %s\n", programID, checkIcon)
	printOutcomeDetails(w, outcome)
}

// printAlreadyVerified prints the report when the service short-circuits a
// resubmitted, already verified request.
func printAlreadyVerified(w io.Writer, programID domain.Pubkey, outcome *domain.JobOutcome) {
	fmt.Fprintf(w, "Program %s has already been verified. %s\n", programID, checkIcon)
	printOutcomeDetails(w, outcome)
}

func printOutcomeDetails(w io.Writer, outcome *domain.JobOutcome) {
	if outcome == nil {
		return
	}
	fmt.Fprintf(w, "On-chain program hash: %s\n", outcome.OnChainHash)
	fmt.Fprintf(w, "Executable hash:       %s\n", outcome.ExecutableHash)
	if outcome.RepoURL != "" {
		fmt.Fprintf(w, "Repository URL: %s\n", outcome.RepoURL)
	}
}

// printNotVerified prints the failure report. detail is an optional extra
// line, already formatted.
func printNotVerified(w io.Writer, programID domain.Pubkey, detail string) {
	if detail != "" {
		fmt.Fprintln(w, detail)
	}
	fmt.Fprintf(w, "Program %s has not been verified. %s\n", programID, crossIcon)
}
