package cmd

import (
	"fmt"
	"time"

	"github.com/smahajan/openbook/internal/repertoire"
	"github.com/smahajan/openbook/internal/review"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review progress per opening",
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := openScheduler(cmd)
		if err != nil {
			return err
		}
		now := time.Now()

		for _, cat := range repertoire.Categories() {
			fmt.Println(cat)
			for _, o := range repertoire.ByCategory(cat) {
				rec := sched.Record(o.Name)
				status := "new"
				switch {
				case rec.Mastered:
					status = "mastered"
				case sched.IsDue(o.Name, now):
					status = "due"
				case rec.LastReviewed != nil:
					if next, ok := review.NextDue(rec, now); ok {
						status = "next " + next.Format("2006-01-02")
					}
				}
				fmt.Printf("  %-36s %2d reviews  %s\n", o.ShortName(), rec.ReviewCount, status)
			}
		}
		return nil
	},
}
