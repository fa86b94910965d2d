package retrier

import "strings"

// DateMatcher decides whether an execution's textual stop date belongs to the
// requested run date. Held as a swappable policy on the orchestrator so the
// matching rule can change without touching the control loop.
type DateMatcher func(stopDate, date string) bool

// MatchesRunDate is the default policy: a lexical prefix test of the RFC3339
// stop date against the YYYY-MM-DD date string. Timezone offsets other than Z
// are therefore compared textually, not as instants.
func MatchesRunDate(stopDate, date string) bool {
	if date == "" {
		return false
	}

	return strings.HasPrefix(stopDate, date)
}
