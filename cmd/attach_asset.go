package cmd

import (
	"github.com/spf13/cobra"
)

// NewAttachAssetCmd creates the attach-asset command
func NewAttachAssetCmd(load func() (*container, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "attach-asset",
		Short: "Attach the build artifact to the latest release",
		Long: `Upload the built archive to the latest GitHub release.

Writes "1" to the attach flag file when the asset was uploaded and "0"
otherwise. A missing artifact or a rejected upload exits with status 1.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			defer c.logger.Sync() //nolint:errcheck // stdout sync fails on some terminals
			outcome, err := c.attachAssetOrchestrator().Execute(cmd.Context())
			return outcomeError(outcome, err)
		},
	}
}
