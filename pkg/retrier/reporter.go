package retrier

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// maxCandidateLines caps the verbose candidate listing; it is a diagnostic
// aid, not a full dump of the batch.
const maxCandidateLines = 10

// Reporter renders per-item progress and the terminal summary to an explicit
// writer. Color and verbosity are configuration, not package state.
type Reporter struct {
	out     io.Writer
	verbose bool

	candidateLines int

	green *color.Color
	red   *color.Color
}

// NewReporter creates a reporter writing to out. When colorize is false the
// output is plain text.
func NewReporter(out io.Writer, colorize, verbose bool) *Reporter {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if colorize {
		green.EnableColor()
		red.EnableColor()
	} else {
		green.DisableColor()
		red.DisableColor()
	}

	return &Reporter{
		out:     out,
		verbose: verbose,
		green:   green,
		red:     red,
	}
}

// Candidate reports an execution that matched the date filter. Only the
// first maxCandidateLines matches are listed; the summary still carries the
// full count.
func (r *Reporter) Candidate(name, stopDate string) {
	if !r.verbose {
		return
	}

	r.candidateLines++

	switch {
	case r.candidateLines <= maxCandidateLines:
		fmt.Fprintf(r.out, "candidate: %s (stopped %s)\n", name, stopDate)
	case r.candidateLines == maxCandidateLines+1:
		fmt.Fprintln(r.out, "further candidates not listed")
	}
}

// Skipped reports an execution that did not fail at the target state.
func (r *Reporter) Skipped(name, targetState string) {
	if !r.verbose {
		return
	}

	fmt.Fprintf(r.out, "skipped: %s did not fail at %s\n", name, targetState)
}

// Restarted reports a successful restart.
func (r *Reporter) Restarted(originalName, newName string) {
	r.green.Fprintf(r.out, "restarted: %s as %s\n", originalName, newName)
}

// WouldRestart reports a dry-run restart decision.
func (r *Reporter) WouldRestart(originalName, newName string) {
	fmt.Fprintf(r.out, "would restart: %s as %s\n", originalName, newName)
}

// RestartFailed reports a restart attempt that the service rejected.
func (r *Reporter) RestartFailed(originalName string, err error) {
	r.red.Fprintf(r.out, "failed to restart: %s: %v\n", originalName, err)
}

// Summary renders the terminal tally.
func (r *Reporter) Summary(s *Summary) {
	fmt.Fprintf(r.out, "\n%d candidate(s) found, ", s.Total)
	r.green.Fprintf(r.out, "%d restarted", s.Restarted)
	fmt.Fprint(r.out, ", ")
	r.red.Fprintf(r.out, "%d failed to restart", s.FailedToRestart)
	fmt.Fprintf(r.out, ", %d skipped\n", s.Skipped)
}
