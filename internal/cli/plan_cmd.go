package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/cli/formatter"
	"github.com/dferrell/cadence/internal/domain"
)

func newPlanCmd(a *App) *cobra.Command {
	var (
		dryRun      bool
		from        time.Time
		days        int
		granularity int
		clientRefs  []string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a schedule for the coming horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req := app.PlanRequest{
				DryRun:         dryRun,
				GranularityMin: granularity,
			}
			if !from.IsZero() {
				span := days
				if span == 0 {
					span = a.Config.HorizonDays
				}
				req.Horizon = domain.Horizon{Start: from, End: from.AddDate(0, 0, span)}
			} else if days > 0 {
				cfg := *a.Config
				cfg.HorizonDays = days
				req.Horizon = cfg.Horizon(time.Now().UTC())
			}

			for _, ref := range clientRefs {
				c, err := a.Clients.Resolve(ctx, ref)
				if err != nil {
					return fmt.Errorf("client %q: %w", ref, err)
				}
				req.ClientScope = append(req.ClientScope, c.ID)
			}

			resp, err := a.Plan.Plan(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.RenderSchedule(resp.Schedule))
			fmt.Fprintln(out, formatter.RenderScheduleSummaryLine(resp.Schedule))
			if resp.BusyCount > 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d busy calendar intervals honored", resp.BusyCount)))
			}
			if dryRun {
				fmt.Fprintln(out, formatter.Dim("Dry run, nothing saved."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute without saving")
	cmd.Flags().Var(newDateValue(&from), "from", "Horizon start date (default: next midnight)")
	cmd.Flags().IntVar(&days, "days", 0, "Horizon length in days (default: config)")
	cmd.Flags().IntVar(&granularity, "granularity", 0, "Slot alignment in minutes (default: config)")
	cmd.Flags().StringSliceVar(&clientRefs, "client", nil, "Restrict to the given clients (name or ID, repeatable)")

	return cmd
}
