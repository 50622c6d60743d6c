package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dferrell/cadence/internal/cli/formatter"
)

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import clients from a CSV intake file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Import.ImportClients(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %s clients with %s session requests\n",
				formatter.Bold(fmt.Sprintf("%d", len(result.Clients))),
				formatter.Bold(fmt.Sprintf("%d", len(result.Requests))))
			for _, w := range result.Warnings {
				fmt.Fprintln(out, formatter.StyleYellow.Render("warning: ")+w)
			}
			return nil
		},
	}
}
