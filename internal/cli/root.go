package cli

import (
	"github.com/spf13/cobra"

	"github.com/dferrell/cadence/internal/calendar"
	"github.com/dferrell/cadence/internal/config"
	"github.com/dferrell/cadence/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Config    *config.Config
	Source    calendar.Source
	Plan      service.PlanService
	Import    service.ImportService
	Clients   service.ClientService
	Schedules service.ScheduleService
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cadence",
		Short:         "Weekly session scheduler for coaches and trainers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newImportCmd(app),
		newClientCmd(app),
		newScheduleCmd(app),
		newStatsCmd(app),
		newAvailCmd(app),
		newInitCmd(),
	)

	return root
}
