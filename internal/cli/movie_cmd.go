package cli

import (
	"fmt"
	"os"

	"github.com/csandor/daybook/internal/cli/formatter"
	"github.com/csandor/daybook/internal/queue"
	"github.com/spf13/cobra"
)

func newMovieCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movie",
		Short: "Manage the movie queue",
	}

	cmd.AddCommand(
		newMovieAddCmd(app),
		newMovieListCmd(app),
		newMovieMoveCmd(app, "up", queue.Up),
		newMovieMoveCmd(app, "down", queue.Down),
		newMovieWatchCmd(app),
		newMovieDoneCmd(app),
		newMovieDeckCmd(app),
		newMovieShelveCmd(app),
		newMovieRemoveCmd(app),
		newMovieExportCmd(app),
	)

	return cmd
}

func newMovieAddCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a movie to the shelf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movie, err := app.Movies.Add(cmd.Context(), args[0], year)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s\n",
				formatter.Bold(movie.Title),
				formatter.TruncID(movie.DisplayID()),
				formatter.Dim("(shelved — `movie deck` to queue it)"))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Release year")

	return cmd
}

func newMovieListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the movie queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Movies.Queue(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQueue(resp))
			return nil
		},
	}
}

func newMovieMoveCmd(app *App, use string, dir queue.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: "Move a movie one step " + use + " the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Movies.Move(cmd.Context(), args[0], dir)
			if resp != nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQueue(resp))
			}
			return err
		},
	}
}

func newMovieWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch ID",
		Short: "Start watching a movie (claims the single watching slot)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Movies.Watch(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printQueue(cmd, app)
		},
	}
}

func newMovieDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a movie watched and close its rank gap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Movies.MarkWatched(cmd.Context(), args[0])
			if resp != nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQueue(resp))
			}
			return err
		},
	}
}

func newMovieDeckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deck ID",
		Short: "Put a shelved movie on deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Movies.Promote(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printQueue(cmd, app)
		},
	}
}

func newMovieShelveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shelve ID",
		Short: "Drop a movie back to the unranked shelf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Movies.Shelve(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printQueue(cmd, app)
		},
	}
}

func newMovieRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Movies.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		},
	}
}

func newMovieExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ranked queue as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return app.Movies.ExportCSV(cmd.Context(), w)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")

	return cmd
}

func printQueue(cmd *cobra.Command, app *App) error {
	resp, err := app.Movies.Queue(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQueue(resp))
	return nil
}
