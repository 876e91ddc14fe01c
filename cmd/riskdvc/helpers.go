package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jossieT/insurance-risk-analytics/internal/dvctool"
)

// reportResult prints one façade result and converts it to a command
// error. Unavailable tools get actionable guidance instead of a bare
// exit status.
func reportResult(out io.Writer, what string, res dvctool.Result) error {
	switch res.State {
	case dvctool.Succeeded:
		fmt.Fprintf(out, "%s: ok\n", what)
		return nil
	case dvctool.Unavailable:
		if errors.Is(res.Err, dvctool.ErrToolUnavailable) {
			return fmt.Errorf("%s: %w (install it and re-run)", what, res.Err)
		}
		return fmt.Errorf("%s: %w", what, res.Err)
	default:
		if res.Output != "" {
			fmt.Fprintln(out, res.Output)
		}
		return fmt.Errorf("%s: %w", what, res.Err)
	}
}
