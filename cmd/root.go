package cmd

import (
	"github.com/smahajan/openbook/internal/progress"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "openbook",
	Short: "Interactive chess opening trainer",
	Long:  "Openbook is a terminal guide to your opening repertoire: study the lines, quiz yourself, and keep them fresh with spaced review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("progress", "", "Path to progress file (overrides OPENBOOK_PROGRESS env var)")

	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveProgressPath returns the progress file path using the --progress flag
// (highest priority), then the OPENBOOK_PROGRESS env var, then the default
// XDG path.
func resolveProgressPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("progress"); p != "" {
		return p, nil
	}
	return progress.DefaultPath()
}
