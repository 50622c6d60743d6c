package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dferrell/cadence/internal/cli/formatter"
	"github.com/dferrell/cadence/internal/importer"
)

// newInitCmd builds the interactive config wizard. It writes cadence.yaml in
// the working directory and never touches the database.
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a cadence.yaml through an interactive wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			const path = "cadence.yaml"
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			answers := wizardAnswers{
				days:        []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
				hours:       "8:00 to 18:00",
				granularity: "30",
				duration:    "60",
				horizon:     "28",
				dbPath:      "cadence.db",
			}
			if err := initForm(&answers).Run(); err != nil {
				return err
			}

			if err := os.WriteFile(path, []byte(answers.render()), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", formatter.Bold(path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing cadence.yaml")
	return cmd
}

type wizardAnswers struct {
	days        []string
	hours       string
	granularity string
	duration    string
	horizon     string
	dbPath      string
	calendarURL string
}

func initForm(a *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Working days").
				Options(
					huh.NewOption("Monday", "monday"),
					huh.NewOption("Tuesday", "tuesday"),
					huh.NewOption("Wednesday", "wednesday"),
					huh.NewOption("Thursday", "thursday"),
					huh.NewOption("Friday", "friday"),
					huh.NewOption("Saturday", "saturday"),
					huh.NewOption("Sunday", "sunday"),
				).
				Value(&a.days).
				Validate(func(days []string) error {
					if len(days) == 0 {
						return fmt.Errorf("pick at least one working day")
					}
					return nil
				}),
			huh.NewInput().
				Title("Working hours").
				Placeholder("8:00 to 18:00").
				Value(&a.hours).
				Validate(validateTimeWindows),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Slot granularity (minutes)").
				Value(&a.granularity).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Default session duration (minutes)").
				Value(&a.duration).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Horizon (days)").
				Value(&a.horizon).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Database path").
				Value(&a.dbPath),
			huh.NewInput().
				Title("Calendar .ics URL (blank for none)").
				Placeholder("https://calendar.example.com/busy.ics").
				Value(&a.calendarURL),
		),
	).WithTheme(cadenceHuhTheme()).WithShowHelp(false)
}

func (a *wizardAnswers) render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "db_path: %s\n", a.dbPath)
	if a.calendarURL != "" {
		fmt.Fprintf(&b, "calendar_url: %s\n", a.calendarURL)
	}
	fmt.Fprintf(&b, "granularity_min: %s\n", a.granularity)
	fmt.Fprintf(&b, "horizon_days: %s\n", a.horizon)
	fmt.Fprintf(&b, "default_duration_min: %s\n", a.duration)
	b.WriteString("working_hours:\n")
	for _, day := range a.days {
		fmt.Fprintf(&b, "  %s: [%q]\n", day, a.hours)
	}
	return b.String()
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func validateTimeWindows(s string) error {
	windows, err := importer.ParseTimeWindows(s)
	if err != nil {
		return err
	}
	if len(windows) == 0 {
		return fmt.Errorf("enter a time range such as \"8:00 to 18:00\"")
	}
	return nil
}
