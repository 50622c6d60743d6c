package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dferrell/cadence/internal/cli/formatter"
)

func newStatsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [ID]",
		Short: "Show aggregates for a stored schedule (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			schedule, stats, err := a.Schedules.Stats(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Schedule %s, generated %s",
				schedule.ID, schedule.GeneratedAt.Format("2006-01-02 15:04"))))
			fmt.Fprintln(out, formatter.RenderStats(stats))
			return nil
		},
	}
}
