package cmd

import (
	"github.com/jhight/stash-release/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stash-release",
	Short: "CI helpers for publishing stash releases",
	Long: `stash-release creates a GitHub release from the newest version tag and
attaches the built library archive to the latest release.`,
	Version:       version.Summary(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}
