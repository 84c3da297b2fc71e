package cli

import (
	"fmt"

	"github.com/csandor/daybook/internal/cli/formatter"
	"github.com/csandor/daybook/internal/planner"
	"github.com/spf13/cobra"
)

func newAgendaCmd(app *App) *cobra.Command {
	var on string

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show the next seven days, the drawer, and overdue items",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.today()
			if on != "" {
				parsed, err := planner.ParseISODate(on)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", on, err)
				}
				today = parsed
			}

			resp, err := app.Agenda.Agenda(cmd.Context(), today)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAgenda(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Render the board as of this date (YYYY-MM-DD)")

	return cmd
}
