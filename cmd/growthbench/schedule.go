package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/growthbench"
)

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Print the input sizes a run will measure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := growthbench.Schedule()
			for _, n := range sizes {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			cmd.PrintErrf("%d sizes from %d to %d\n", len(sizes), sizes[0], sizes[len(sizes)-1])
			return nil
		},
	}
}
