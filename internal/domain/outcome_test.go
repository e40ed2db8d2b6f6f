package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		outcome   Outcome
		succeeded bool
		exitCode  int
	}{
		{outcome: OutcomeNothingToDo, succeeded: false, exitCode: 0},
		{outcome: OutcomeAlreadyReleased, succeeded: false, exitCode: 0},
		{outcome: OutcomeDryRun, succeeded: false, exitCode: 0},
		{outcome: OutcomeCreated, succeeded: true, exitCode: 0},
		{outcome: OutcomeCreationFailed, succeeded: false, exitCode: 1},
		{outcome: OutcomeMissingArtifact, succeeded: false, exitCode: 1},
		{outcome: OutcomeNoRelease, succeeded: false, exitCode: 0},
		{outcome: OutcomeAttached, succeeded: true, exitCode: 0},
		{outcome: OutcomeUploadFailed, succeeded: false, exitCode: 1},
	}
	for _, tc := range cases {
		t.Run(string(tc.outcome), func(t *testing.T) {
			assert.Equal(t, tc.succeeded, tc.outcome.Succeeded())
			assert.Equal(t, tc.exitCode, tc.outcome.ExitCode())
		})
	}
}

func TestCommit_ShortSHA(t *testing.T) {
	t.Run("Should keep the first seven characters", func(t *testing.T) {
		c := Commit{SHA: "0123456789abcdef"}
		assert.Equal(t, "0123456", c.ShortSHA())
	})
	t.Run("Should return short hashes unchanged", func(t *testing.T) {
		c := Commit{SHA: "abc"}
		assert.Equal(t, "abc", c.ShortSHA())
	})
}
