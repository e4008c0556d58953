package cmd

import (
	"fmt"
	"time"

	"github.com/smahajan/openbook/internal/repertoire"
	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List openings due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := openScheduler(cmd)
		if err != nil {
			return err
		}

		var names []string
		for _, o := range repertoire.All() {
			names = append(names, o.Name)
		}
		due := sched.DueNames(names, time.Now())
		if len(due) == 0 {
			fmt.Println("Nothing due. Well done.")
			return nil
		}
		for _, name := range due {
			rec := sched.Record(name)
			if rec.LastReviewed == nil {
				fmt.Printf("%-40s never reviewed\n", name)
				continue
			}
			fmt.Printf("%-40s last reviewed %s  (%d reviews)\n",
				name, rec.LastReviewed.Format("2006-01-02"), rec.ReviewCount)
		}
		return nil
	},
}
