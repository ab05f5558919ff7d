// Package main is the entry point for shelf, an in-memory library catalog.
// It reads flags, sets up logging and the theme, optionally seeds the catalog,
// then hands control to the menu loop or the full-screen browser.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shelf/internal/catalog"
	"github.com/idilsaglam/shelf/internal/cli"
	"github.com/idilsaglam/shelf/internal/config"
	"github.com/idilsaglam/shelf/internal/logger"
	"github.com/idilsaglam/shelf/internal/store/jsonstore"
	"github.com/idilsaglam/shelf/internal/tui"
	"github.com/idilsaglam/shelf/internal/ui"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	settings := config.Default()
	settings.ApplyEnv()

	cmd := &cobra.Command{
		Use:   "shelf",
		Short: "In-memory library catalog",
		Long: `shelf keeps a catalog of books for the lifetime of one session.
Add, list, borrow and return books from a numbered menu, or pass --tui
for a full-screen browser. Nothing is saved when the program exits;
--seed preloads books from a JSON file.

Environment:
  SHELF_THEME      classic | neon | mono
  SHELF_LOG_LEVEL  debug | info | warning | error
  SHELF_LOG_FILE   write logs to this file (rotated) instead of stderr`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("log-file") {
				settings.Logger.LogType = config.LogTypeFile
			}
			return run(cmd, &settings)
		},
	}

	f := cmd.Flags()
	f.StringVar(&settings.Theme, "theme", settings.Theme, "color theme: classic, neon or mono")
	f.StringVar(&settings.SeedPath, "seed", "", "JSON file of books to load at startup")
	f.BoolVar(&settings.TUI, "tui", false, "open the full-screen browser instead of the menu")
	f.StringVar(&settings.Logger.LogLevel, "log-level", settings.Logger.LogLevel, "debug, info, warning or error")
	f.StringVar(&settings.Logger.LogType, "log-type", settings.Logger.LogType, "console or file")
	f.StringVar(&settings.Logger.FilePath, "log-file", settings.Logger.FilePath, "log file path (implies --log-type file)")

	return cmd
}

func run(cmd *cobra.Command, s *config.Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	log, err := logger.New(&s.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	ui.SetTheme(s.Theme)

	registry := catalog.NewRegistry(log)

	if s.SeedPath != "" {
		recs, err := jsonstore.Load(s.SeedPath)
		if err != nil {
			return fmt.Errorf("load seed %s: %w", s.SeedPath, err)
		}
		for _, res := range jsonstore.Seed(registry, recs) {
			if !res.OK() {
				log.Warn("seed: ", res.Message())
			}
		}
		log.Info("seeded ", registry.Len(), " books from ", s.SeedPath)
	}

	if s.TUI {
		if err := tui.Run(registry); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	}

	cli.NewMenu(registry, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run()
	return nil
}
