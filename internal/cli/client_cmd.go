package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dferrell/cadence/internal/cli/formatter"
	"github.com/dferrell/cadence/internal/domain"
	"github.com/dferrell/cadence/internal/importer"
)

func newClientCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(a),
		newClientListCmd(a),
		newClientShowCmd(a),
		newClientRemoveCmd(a),
	)

	return cmd
}

func newClientAddCmd(a *App) *cobra.Command {
	var (
		email, location, days, times, blocked string
		duration, priority, weekly            int
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a single client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedDays, err := importer.ParseDayList(days)
			if err != nil {
				return fmt.Errorf("--days: %w", err)
			}
			windows, err := importer.ParseTimeWindows(times)
			if err != nil {
				return fmt.Errorf("--times: %w", err)
			}
			blockedDates, err := importer.ParseDates(blocked)
			if err != nil {
				return fmt.Errorf("--block: %w", err)
			}

			if duration == 0 {
				duration = a.Config.DefaultDurationMin
			}
			c := &domain.Client{
				Name:               args[0],
				Email:              email,
				Location:           importer.ParseLocation(location),
				DefaultDurationMin: duration,
				Priority:           priority,
				Preferences:        importer.BuildPreferences(parsedDays, windows),
				BlockedDates:       blockedDates,
			}
			if weekly == 0 {
				weekly = a.Config.DefaultWeeklySessions
			}
			if err := a.Clients.Create(cmd.Context(), c, weekly); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added client %s %s\n",
				formatter.Bold(c.Name), formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&location, "location", "in_person", "in_person or remote")
	cmd.Flags().IntVar(&duration, "duration", 0, "Session length in minutes (default: config)")
	cmd.Flags().IntVar(&priority, "priority", 1, "Scheduling priority, higher wins")
	cmd.Flags().IntVar(&weekly, "weekly", 0, "Sessions per week (default: config)")
	cmd.Flags().StringVar(&days, "days", "", `Preferred weekdays, e.g. "Mon, Wed"`)
	cmd.Flags().StringVar(&times, "times", "", `Preferred times, e.g. "morning" or "9:00 to 11:00"`)
	cmd.Flags().StringVar(&blocked, "block", "", "Unavailable dates (YYYY-MM-DD, comma-separated)")

	return cmd
}

func newClientListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := a.Clients.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No clients. Run \"cadence import\" or \"cadence client add\"."))
				return nil
			}

			rows := make([][]string, 0, len(clients))
			for _, c := range clients {
				rows = append(rows, []string{
					formatter.TruncID(c.ID),
					c.Name,
					formatter.LocationPill(c.Location),
					formatter.FormatMinutes(c.DefaultDurationMin),
					fmt.Sprintf("%d", c.Priority),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.RenderTable([]string{"ID", "Name", "Location", "Duration", "Priority"}, rows))
			return nil
		},
	}
}

func newClientShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CLIENT",
		Short: "Show one client's preferences and requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.Clients.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			requests, err := a.Clients.Requests(ctx, c.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(c.Name))
			fmt.Fprintf(out, "  ID        %s\n", formatter.Dim(c.ID))
			if c.Email != "" {
				fmt.Fprintf(out, "  Email     %s\n", c.Email)
			}
			fmt.Fprintf(out, "  Location  %s\n", formatter.LocationPill(c.Location))
			fmt.Fprintf(out, "  Duration  %s\n", formatter.FormatMinutes(c.DefaultDurationMin))
			fmt.Fprintf(out, "  Priority  %d\n", c.Priority)

			if len(c.Preferences) > 0 {
				fmt.Fprintln(out, "  Prefers")
				for _, line := range formatter.Preferences(c.Preferences) {
					fmt.Fprintf(out, "    %s\n", line)
				}
			}
			if blocked := formatter.BlockedDates(c.BlockedDates); blocked != "" {
				fmt.Fprintf(out, "  Blocked   %s\n", blocked)
			}
			for _, r := range requests {
				duration := r.DurationMin
				if duration == 0 {
					duration = c.DefaultDurationMin
				}
				fmt.Fprintf(out, "  Requests  %d x %s per week\n", r.Count, formatter.FormatMinutes(duration))
			}
			return nil
		},
	}
}

func newClientRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm CLIENT",
		Short: "Remove a client and their session requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.Clients.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.Clients.Delete(ctx, c.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed client %s\n", formatter.Bold(c.Name))
			return nil
		},
	}
}
