package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/smahajan/openbook/internal/app"
	"github.com/smahajan/openbook/internal/progress"
	"github.com/smahajan/openbook/internal/review"
	"github.com/spf13/cobra"
)

// openScheduler loads the progress file and builds the review scheduler. A
// corrupt file is reported on stderr and the session starts from an empty
// record set; the file is rewritten on the next save.
func openScheduler(cmd *cobra.Command) (*review.Scheduler, error) {
	path, err := resolveProgressPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve progress path: %w", err)
	}
	sched, err := review.NewScheduler(progress.NewFileStore(path))
	if err != nil {
		if !errors.Is(err, progress.ErrCorrupt) {
			return nil, fmt.Errorf("load progress: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Progress file is unreadable, starting fresh:", err)
	}
	return sched, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	sched, err := openScheduler(cmd)
	if err != nil {
		return err
	}
	return app.Run(app.Options{Scheduler: sched})
}
