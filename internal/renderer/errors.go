package renderer

import "fmt"

// Kind classifies why an invocation produced no data point.
type Kind string

const (
	KindLaunch   Kind = "launch"   // the process could not be started
	KindTimeout  Kind = "timeout"  // Settings.Timeout elapsed
	KindCanceled Kind = "canceled" // the caller's context was cancelled
	KindParse    Kind = "parse"    // the output lacked a required metric
)

// RunError is the failure variant of an invocation. Output holds whatever
// the renderer printed before failing, which is often the only clue.
type RunError struct {
	Kind   Kind
	Job    Job
	Output string
	Err    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("renderer %s failure for %s: %v", e.Kind, e.Job, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
