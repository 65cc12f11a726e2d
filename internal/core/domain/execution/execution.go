/*
Package execution defines the result of running one wrapped command.
*/
package execution

import "time"

/*
Result is the fully buffered outcome of a single wrapped command. It is
populated once the child process has exited and is consumed immediately
to decide the wrapper's exit status.
*/
type Result struct {
	RunID       string
	CommandLine string
	Shell       string
	Stdout      string
	Stderr      string
	ExitCode    int // the child's own status, reported but never used for the verdict
	Duration    time.Duration
	Matched     bool
}

// CombinedOutput returns the text searched for the success marker:
// stderr first, then stdout.
func (r Result) CombinedOutput() string {
	return r.Stderr + r.Stdout
}
