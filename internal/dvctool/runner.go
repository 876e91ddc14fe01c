// Package dvctool wraps the external dvc and git command-line tools
// behind a small façade with tri-state results: success, tool failure
// (non-zero exit, diagnostics captured) or tool unavailable.
package dvctool

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// ErrToolUnavailable marks results whose external program could not be
// located or executed at all.
var ErrToolUnavailable = errors.New("external tool unavailable")

// State classifies the outcome of one external tool invocation.
type State int

const (
	// Succeeded: the tool ran and exited zero.
	Succeeded State = iota
	// Failed: the tool ran and reported a non-zero status. The captured
	// diagnostic text is in Result.Output; the operation is retryable
	// by the caller, the façade never retries.
	Failed
	// Unavailable: the program could not be located or executed.
	Unavailable
)

func (s State) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unavailable"
	}
}

// Result is the outcome of one invocation.
type Result struct {
	State   State
	Command string // rendered command line, for diagnostics
	Output  string // captured combined stdout/stderr, trimmed
	Err     error  // underlying error for Failed/Unavailable
}

// Success reports whether the invocation exited zero.
func (r Result) Success() bool { return r.State == Succeeded }

// Runner executes one external command in a working directory and
// returns its combined output. The call blocks until the program exits;
// any timeout policy belongs to the caller.
type Runner interface {
	Run(dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// classify builds a Result from a runner invocation.
func classify(out []byte, err error, name string, args ...string) Result {
	res := Result{
		Command: strings.Join(append([]string{name}, args...), " "),
		Output:  strings.TrimSpace(string(out)),
	}
	switch {
	case err == nil:
		res.State = Succeeded
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrPermission):
		res.State = Unavailable
		res.Err = fmt.Errorf("%w: %s: %v", ErrToolUnavailable, name, err)
	default:
		res.State = Failed
		res.Err = fmt.Errorf("%s: %w", res.Command, err)
	}
	return res
}
