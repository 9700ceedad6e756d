package main

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/alexshd/growthbench/archive"
)

func runsCmd() *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs <archive>",
		Short: "List the runs stored in an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := archive.Open(args[0])
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context())
			if err != nil {
				return err
			}

			data := pterm.TableData{{"Run", "Started", "Duration", "Measured", "Skipped", "Subject"}}
			for _, r := range runs {
				data = append(data, []string{
					r.ID,
					r.StartedAt.Local().Format(time.DateTime),
					r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String(),
					fmt.Sprintf("%d/%d", r.Measured, r.Attempted),
					fmt.Sprint(r.Skipped),
					r.Subject,
				})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}

	return runsCmd
}
