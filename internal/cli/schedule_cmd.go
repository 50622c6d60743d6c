package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/cli/formatter"
)

func newScheduleCmd(a *App) *cobra.Command {
	var (
		list  bool
		limit int
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "schedule [ID]",
		Short: "Show a stored schedule (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if list {
				summaries, err := a.Schedules.List(ctx, limit)
				if err != nil {
					return err
				}
				if len(summaries) == 0 {
					fmt.Fprintln(out, formatter.Dim("No schedules yet. Run \"cadence plan\"."))
					return nil
				}
				rows := make([][]string, 0, len(summaries))
				for _, s := range summaries {
					rows = append(rows, []string{
						formatter.TruncID(s.ID),
						s.GeneratedAt,
						s.HorizonStart[:10] + " to " + s.HorizonEnd[:10],
						fmt.Sprintf("%d", s.Sessions),
						fmt.Sprintf("%d", s.Unplaced),
					})
				}
				fmt.Fprint(out, formatter.RenderTable(
					[]string{"ID", "Generated", "Horizon", "Sessions", "Unplaced"}, rows))
				return nil
			}

			var (
				schedule *app.Schedule
				err      error
			)
			if len(args) == 1 {
				schedule, err = a.Schedules.GetByID(ctx, args[0])
			} else {
				schedule, err = a.Schedules.Latest(ctx)
			}
			if err != nil {
				return err
			}

			if watch {
				program := tea.NewProgram(newWeekModel(schedule), tea.WithAltScreen())
				_, err := program.Run()
				return err
			}

			fmt.Fprintln(out, formatter.RenderSchedule(schedule))
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List stored schedules")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Max schedules to list")
	cmd.Flags().BoolVar(&watch, "watch", false, "Open the interactive week viewer")

	return cmd
}
