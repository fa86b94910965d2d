package retrier

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_SummaryPlainText(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false, false)

	reporter.Summary(&Summary{Total: 3, Restarted: 1, FailedToRestart: 1, Skipped: 1})

	assert.Equal(t, "\n3 candidate(s) found, 1 restarted, 1 failed to restart, 1 skipped\n", buf.String())
}

func TestReporter_VerboseGatesProgressLines(t *testing.T) {
	var quiet, verbose bytes.Buffer

	NewReporter(&quiet, false, false).Candidate("exec_a", "2025-11-13T10:00:00Z")
	NewReporter(&quiet, false, false).Skipped("exec_a", "PatchDrupalSection")

	NewReporter(&verbose, false, true).Candidate("exec_a", "2025-11-13T10:00:00Z")
	NewReporter(&verbose, false, true).Skipped("exec_a", "PatchDrupalSection")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "candidate: exec_a")
	assert.Contains(t, verbose.String(), "skipped: exec_a did not fail at PatchDrupalSection")
}

func TestReporter_CandidateListingCapped(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false, true)

	for i := 0; i < 15; i++ {
		reporter.Candidate(fmt.Sprintf("exec_%d", i), "2025-11-13T10:00:00Z")
	}

	out := buf.String()
	assert.Equal(t, 10, strings.Count(out, "candidate: exec_"))
	assert.Contains(t, out, "candidate: exec_9")
	assert.NotContains(t, out, "candidate: exec_10")
	assert.Equal(t, 1, strings.Count(out, "further candidates not listed"))
}

func TestReporter_RestartLinesAlwaysPrinted(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, false, false)

	reporter.Restarted("exec_a", "exec-r")
	reporter.RestartFailed("exec_b", assert.AnError)
	reporter.WouldRestart("exec_c", "exec-r")

	out := buf.String()
	assert.Contains(t, out, "restarted: exec_a as exec-r")
	assert.Contains(t, out, "failed to restart: exec_b")
	assert.Contains(t, out, "would restart: exec_c as exec-r")
}
