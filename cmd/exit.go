package cmd

import (
	"fmt"

	"github.com/jhight/stash-release/internal/domain"
)

// ExitError carries the process exit code for an outcome that is not a
// plain success.
type ExitError struct {
	Code    int
	Outcome domain.Outcome
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("finished with outcome %s", e.Outcome)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// outcomeError maps an orchestrator result onto the command's return value.
func outcomeError(outcome domain.Outcome, err error) error {
	if outcome == "" {
		return err
	}
	if code := outcome.ExitCode(); code != 0 || err != nil {
		if code == 0 {
			code = 1
		}
		return &ExitError{Code: code, Outcome: outcome, Err: err}
	}
	return nil
}
