package cmd

import (
	"github.com/jhight/stash-release/internal/orchestrator"
	"github.com/spf13/cobra"
)

// NewCreateReleaseCmd creates the create-release command
func NewCreateReleaseCmd(load func() (*container, error)) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "create-release",
		Short: "Create a release from the newest version tag",
		Long: `Create a GitHub release for the newest MAJOR.MINOR.PATCH tag unless it is
already released. The release body lists the commits since the previous
version tag.

Writes "1" to the release flag file when a release was created and "0"
otherwise.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			defer c.logger.Sync() //nolint:errcheck // stdout sync fails on some terminals
			outcome, err := c.createReleaseOrchestrator().Execute(cmd.Context(), orchestrator.CreateReleaseConfig{
				DryRun: dryRun,
			})
			return outcomeError(outcome, err)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build the release body without creating the release")
	return cmd
}
