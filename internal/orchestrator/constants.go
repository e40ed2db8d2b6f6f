package orchestrator

import (
	"os"
	"time"
)

const (
	// DefaultWorkflowTimeout bounds a whole create-release or attach-asset run.
	DefaultWorkflowTimeout = 5 * time.Minute
	// WorkflowTimeoutEnv overrides DefaultWorkflowTimeout with a Go duration string.
	WorkflowTimeoutEnv = "STASH_RELEASE_TIMEOUT"
)

// workflowTimeout returns the run deadline, honouring WorkflowTimeoutEnv when
// it holds a positive duration.
func workflowTimeout() time.Duration {
	if env := os.Getenv(WorkflowTimeoutEnv); env != "" {
		if duration, err := time.ParseDuration(env); err == nil && duration > 0 {
			return duration
		}
	}
	return DefaultWorkflowTimeout
}
