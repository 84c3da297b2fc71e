package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/csandor/daybook/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [text...]",
		Short: "Quick-add an item (#tags set kind and placement)",
		Long: `Add an item from a single line of text. Hash tags anywhere in the
line set the kind (#task, #plan, #focus) and the placement (#today,
#tomorrow, #mon..#sun, #week, #weekend, #nextweek, #nextweekend,
#someday). With no arguments an interactive form opens instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.TrimSpace(strings.Join(args, " "))
			if raw == "" {
				if !app.interactive() {
					return fmt.Errorf("nothing to add (pass text, or run without --plain on a terminal)")
				}
				line, err := runAddForm(app)
				if err != nil {
					return err
				}
				raw = line
			}

			item, err := app.Items.QuickAdd(cmd.Context(), raw, app.today(), app.defaultKind())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s %s\n",
				formatter.KindBadge(string(item.Kind)),
				formatter.Bold(item.Title),
				formatter.TruncID(item.DisplayID()),
				formatter.Dim("→ "+placementLabel(item.Placement, app.today())),
			)
			return nil
		},
	}
}

// runAddForm collects a title, kind, and placement interactively and
// folds them back into a quick-add line.
func runAddForm(app *App) (string, error) {
	var title, when string
	kind := string(app.defaultKind())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("call the dentist").
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Task", "task"),
					huh.NewOption("Plan", "plan"),
					huh.NewOption("Focus", "focus"),
				).
				Value(&kind),
			huh.NewSelect[string]().
				Title("When").
				Options(
					huh.NewOption("No date", ""),
					huh.NewOption("Today", "#today"),
					huh.NewOption("Tomorrow", "#tomorrow"),
					huh.NewOption("This week", "#week"),
					huh.NewOption("This weekend", "#weekend"),
					huh.NewOption("Next week", "#nextweek"),
					huh.NewOption("Next weekend", "#nextweekend"),
				).
				Value(&when),
		),
	).WithTheme(daybookHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}

	line := strings.TrimSpace(title) + " #" + kind
	if when != "" {
		line += " " + when
	}
	return line, nil
}
