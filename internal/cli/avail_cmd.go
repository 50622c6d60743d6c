package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dferrell/cadence/internal/availability"
	"github.com/dferrell/cadence/internal/cli/formatter"
	"github.com/dferrell/cadence/internal/domain"
)

func newAvailCmd(a *App) *cobra.Command {
	var (
		from time.Time
		days int
	)

	cmd := &cobra.Command{
		Use:   "avail",
		Short: "Show free intervals over the coming horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			workingHours, err := a.Config.WorkingHoursModel()
			if err != nil {
				return err
			}

			var horizon domain.Horizon
			if !from.IsZero() {
				span := days
				if span == 0 {
					span = a.Config.HorizonDays
				}
				horizon = domain.Horizon{Start: from, End: from.AddDate(0, 0, span)}
			} else {
				cfg := *a.Config
				if days > 0 {
					cfg.HorizonDays = days
				}
				horizon = cfg.Horizon(time.Now().UTC())
			}

			var busy []availability.Interval
			if a.Source != nil {
				busy, err = a.Source.BusyIntervals(cmd.Context(), horizon)
				if err != nil {
					return fmt.Errorf("fetching busy intervals: %w", err)
				}
			}

			free, err := availability.FreeIntervals(workingHours, busy, horizon)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(fmt.Sprintf("Free time %s to %s",
				horizon.Start.Format("Jan 2"), horizon.End.Format("Jan 2, 2006"))))
			if len(free) == 0 {
				fmt.Fprintln(out, formatter.Dim("No free time in the horizon."))
				return nil
			}
			for _, iv := range free {
				fmt.Fprintf(out, "  %s %s\n",
					formatter.ClockRange(iv.Start, iv.End),
					formatter.Dim(fmt.Sprintf("(%s)", formatter.FormatMinutes(int(iv.Duration().Minutes())))))
			}
			fmt.Fprintf(out, "\n%s free in total, %d busy intervals honored\n",
				formatter.Bold(formatter.FormatMinutes(availability.TotalMinutes(free))), len(busy))
			return nil
		},
	}

	cmd.Flags().Var(newDateValue(&from), "from", "Horizon start date (default: next midnight)")
	cmd.Flags().IntVar(&days, "days", 0, "Horizon length in days (default: config)")

	return cmd
}
