package cli

import (
	"fmt"

	"github.com/csandor/daybook/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID TARGET",
		Short: "Re-place an item (TARGET: date, #directive, or board token)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, changed, err := app.Items.Move(cmd.Context(), args[0], args[1], app.today())
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s stays on %s\n",
					formatter.Bold(item.Title),
					placementLabel(item.Placement, app.today()))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s %s\n",
				formatter.Bold(item.Title),
				formatter.Dim("→ "+placementLabel(item.Placement, app.today())))
			return nil
		},
	}
}
