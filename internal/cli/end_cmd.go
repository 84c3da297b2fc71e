package cli

import (
	"fmt"

	"github.com/csandor/daybook/internal/cli/formatter"
	"github.com/csandor/daybook/internal/planner"
	"github.com/spf13/cobra"
)

func newEndCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "end ID [YYYY-MM-DD]",
		Short: "Set or clear the end date of a plan",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				item, err := app.Items.SetEndDate(cmd.Context(), args[0], nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared end date of %s\n", formatter.Bold(item.Title))
				return nil
			}

			end, err := planner.ParseISODate(args[1])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[1], err)
			}
			item, err := app.Items.SetEndDate(cmd.Context(), args[0], &end)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now runs through %s\n",
				formatter.Bold(item.Title), end.Format("Mon Jan 2"))
			return nil
		},
	}
}
