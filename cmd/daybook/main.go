package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/csandor/daybook/internal/cli"
	"github.com/csandor/daybook/internal/config"
	"github.com/csandor/daybook/internal/db"
	"github.com/csandor/daybook/internal/repository"
	"github.com/csandor/daybook/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	itemRepo := repository.NewSQLiteItemRepo(database)
	movieRepo := repository.NewSQLiteMovieRepo(database)

	app := &cli.App{
		Items:       service.NewItemService(itemRepo),
		Agenda:      service.NewAgendaService(itemRepo),
		Movies:      service.NewMovieService(movieRepo),
		DefaultKind: cfg.DefaultKind,
		Now:         time.Now,
		Plain:       cfg.Plain,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	if !app.IsInteractive() {
		app.Plain = true
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
