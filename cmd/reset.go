package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all review progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveProgressPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve progress path: %w", err)
		}

		if !resetForce {
			fmt.Printf("Delete all review progress at %s? [y/N] ", path)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No progress file found.")
				return nil
			}
			return fmt.Errorf("remove progress file: %w", err)
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Skip the confirmation prompt")
}
