package cli

import (
	"time"

	"github.com/csandor/daybook/internal/cli/formatter"
	"github.com/csandor/daybook/internal/domain"
	"github.com/csandor/daybook/internal/planner"
	"github.com/csandor/daybook/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Items  service.ItemService
	Agenda service.AgendaService
	Movies service.MovieService

	// DefaultKind is applied when a quick-add line carries no kind tag.
	DefaultKind domain.ItemKind

	// Now supplies the reference time for placement resolution. Nil
	// means the wall clock.
	Now func() time.Time

	// IsInteractive reports whether the process is attached to a
	// terminal. Forms and the board refuse to start without one.
	IsInteractive func() bool

	// Plain disables color and interactive prompts.
	Plain bool
}

func (a *App) today() time.Time {
	if a.Now != nil {
		return planner.Date(a.Now())
	}
	return planner.Date(time.Now())
}

func (a *App) defaultKind() domain.ItemKind {
	if a.DefaultKind == "" {
		return domain.KindTask
	}
	return a.DefaultKind
}

func (a *App) interactive() bool {
	return !a.Plain && a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "daybook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "daybook",
		Short: "Weekly board and movie queue",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.Plain {
				formatter.DisableColor()
			}
		},
	}

	registerGlobalFlags(root.PersistentFlags(), app)

	root.AddCommand(
		newAddCmd(app),
		newAgendaCmd(app),
		newBoardCmd(app),
		newMoveCmd(app),
		newEndCmd(app),
		newDoneCmd(app),
		newRemoveCmd(app),
		newMovieCmd(app),
	)

	return root
}

// registerGlobalFlags binds the flags shared by every subcommand.
func registerGlobalFlags(fs *pflag.FlagSet, app *App) {
	fs.BoolVar(&app.Plain, "plain", app.Plain, "Plain output: no color, no prompts")
}
