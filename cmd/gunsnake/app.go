package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gunsnake/internal/audio"
	"github.com/vovakirdan/gunsnake/internal/config"
	"github.com/vovakirdan/gunsnake/internal/core"
	"github.com/vovakirdan/gunsnake/internal/game"
	"github.com/vovakirdan/gunsnake/internal/levels"
	"github.com/vovakirdan/gunsnake/internal/registry"
	"github.com/vovakirdan/gunsnake/internal/storage"
)

// Process-wide state set up before every command.
var (
	settings config.Config
	logger   *log.Logger
	logFile  *os.File
)

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	settings, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		logFile, err = os.OpenFile(config.ExpandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		w = logFile
	} else if cmd.Name() == "serve" {
		w = os.Stderr
	}
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gunsnake",
		Level:           level,
	})
	game.SetDefaults(game.Env{Settings: settings, Logger: logger})
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if logFile != nil {
		logFile.Close()
	}
}

// openStore opens the leaderboard. A failure is logged and play goes on
// without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func levelLoader() *levels.Loader {
	return levels.NewLoader(config.ExpandHome(settings.LevelsDir))
}

// newGame builds a game with the shared collaborators. Nil store or sink
// leave those features off.
func newGame(cfg config.Config, store *storage.Store, sink game.EventSink) (*game.Game, error) {
	mode, err := config.ParseMode(string(cfg.Mode))
	if err != nil {
		return nil, err
	}
	w, h := cfg.Dimensions()
	lvl, err := levelLoader().Resolve(cfg.Level, w, h)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", cfg.Level, err)
	}

	opts := []game.Option{
		game.WithSettings(cfg),
		game.WithLevel(lvl),
		game.WithLogger(logger.With("mode", mode, "player", cfg.Player)),
	}
	if store != nil {
		opts = append(opts, game.WithReporter(store))
	}
	if sink != nil {
		opts = append(opts, game.WithEventSink(sink))
	}
	return game.New(mode, opts...), nil
}

// gameFactory adapts newGame for menus and SSH sessions.
func gameFactory(store *storage.Store, sink game.EventSink) func(mode, player string) (registry.Game, error) {
	return func(mode, player string) (registry.Game, error) {
		cfg := settings
		cfg.Mode = config.Mode(mode)
		if player != "" {
			cfg.Player = player
		}
		return newGame(cfg, store, sink)
	}
}

func newSoundManager() *audio.Manager {
	return audio.NewManager(settings.Audio, logger)
}

func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: core.FastTickRate,
		Seed:     flagSeed,
	}
}
