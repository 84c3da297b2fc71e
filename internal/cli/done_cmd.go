package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark an item done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := app.Items.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.Items.MarkDone(cmd.Context(), item.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done: %s\n", item.Title)
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := app.Items.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Delete(cmd.Context(), item.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", item.Title)
			return nil
		},
	}
}
