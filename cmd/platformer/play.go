package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/games/platformer"
	"github.com/vovakirdan/platformer/internal/platform/tui"
	"github.com/vovakirdan/platformer/internal/registry"
	"github.com/vovakirdan/platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRender     string
	flagNoRecord   bool
)

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom pacing config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().StringVar(&flagRender, "render", "", "Renderer: color, plain, quiet, live (default: color on a terminal, plain otherwise)")
	rootCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save the run to the history database")
}

func runGame(cmd *cobra.Command, args []string) error {
	// Arguments are valid from here on; later failures are not usage errors.
	cmd.SilenceUsage = true

	logger := newLogger()
	tty := term.IsTerminal(int(os.Stdout.Fd()))

	cfg := core.RuntimeConfig{
		Tiles: atoi(args[0]),
		Start: atoi(args[1]),
		Seed:  flagSeed,
	}

	// Pacing config and difficulty
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	pacingCfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPlatformerPreset(&pacingCfg, preset)

	renderName := flagRender
	if renderName == "" {
		renderName = "plain"
		if tty {
			renderName = "color"
		}
	}
	if !registry.Exists(renderName) {
		return fmt.Errorf("unknown renderer %q, run 'platformer renderers' to list them", renderName)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []platformer.Option{
		platformer.WithLogger(logger),
		platformer.WithPacing(platformer.PacingFromConfig(pacingCfg)),
	}

	// Run history is optional; a broken database must not block a game.
	if !flagNoRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("run history disabled", "db", flagDBPath, "err", err)
		} else {
			defer store.Close()
			opts = append(opts, platformer.WithResultSaver(store))
		}
	}

	// Validate before any renderer takes over the terminal.
	if _, err := platformer.New(cfg.Tiles, cfg.Start); err != nil {
		return err
	}

	renderer, err := registry.Create(renderName, registry.Options{
		Out:    os.Stdout,
		Tiles:  cfg.Tiles,
		Cancel: cancel,
	})
	if err != nil {
		return err
	}
	opts = append(opts, platformer.WithRenderer(renderer))

	session, err := platformer.NewSession(cfg, opts...)
	if err != nil {
		return err
	}

	logger.Debug("starting game", "tiles", cfg.Tiles, "start", cfg.Start, "difficulty", preset, "render", renderName)
	result, runErr := session.Run(ctx)

	if c, ok := renderer.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("renderer did not close cleanly", "err", err)
		}
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) || errors.Is(runErr, platformer.ErrAborted) {
			fmt.Println("Game aborted.")
			return nil
		}
		return runErr
	}

	printResult(os.Stdout, result, tty && renderName != "plain")
	return nil
}

// printResult writes the outcome banner and a short summary of the run.
func printResult(w io.Writer, r platformer.Result, color bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.OutcomeBanner(w, r.Outcome, color))
	fmt.Fprintf(w, "  Tiles left: %v\n", r.Floor)
	fmt.Fprintf(w, "  Jumps:      %d (%d redirected)\n", r.Jumps, r.Fallbacks)
	fmt.Fprintf(w, "  Drops:      %d\n", r.Drops)
	fmt.Fprintf(w, "  Duration:   %s\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "  Run:        %s (seed %d)\n", r.ID, r.Seed)
}
