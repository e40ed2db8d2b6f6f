package domain

// Outcome names how a command run ended. The calling workflow only sees the
// result flag and the exit code; the outcome keeps the reason.
type Outcome string

const (
	OutcomeNothingToDo     Outcome = "nothing_to_do"
	OutcomeAlreadyReleased Outcome = "already_released"
	OutcomeDryRun          Outcome = "dry_run"
	OutcomeCreated         Outcome = "created"
	OutcomeCreationFailed  Outcome = "creation_failed"
	OutcomeMissingArtifact Outcome = "missing_artifact"
	OutcomeNoRelease       Outcome = "no_release"
	OutcomeAttached        Outcome = "attached"
	OutcomeUploadFailed    Outcome = "upload_failed"
)

// Succeeded is the value written to the result flag file.
func (o Outcome) Succeeded() bool {
	return o == OutcomeCreated || o == OutcomeAttached
}

// ExitCode is the process exit status for the outcome.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeCreationFailed, OutcomeMissingArtifact, OutcomeUploadFailed:
		return 1
	default:
		return 0
	}
}
