package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rescue/internal/core"
	"github.com/vovakirdan/tui-rescue/internal/platform/desktop"
	"github.com/vovakirdan/tui-rescue/internal/platform/tui"
	"github.com/vovakirdan/tui-rescue/internal/registry"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D   - Steer (runner) or walk (patrol)
  Up/Down, W/S      - Walk (patrol)
  Shift+arrows      - Sprint (patrol)
  Space/T           - Switch between robot and vehicle
  E                 - Help the nearest citizen (patrol)
  Mouse click       - Steer to a lane or walk to a spot
  Enter             - Start the mission
  P                 - Pause
  R                 - Play again after the mission ends
  Esc/B             - Leave when paused or finished
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  rescue play runner
  rescue play patrol --difficulty easy
  rescue play runner --window
  rescue play runner --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rescue list' to see available games.")
		os.Exit(1)
	}

	env := openPlayEnv(true)
	env.configureGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		env.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: opts.FPS,
		Seed:     opts.Seed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var runErr error
	if flagWindow {
		dopts := desktop.DefaultOptions()
		dopts.Runtime = cfg
		dopts.Store = env.store
		dopts.Announcer = env.announcer()
		runErr = desktop.Run(game, dopts)
	} else {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cfg.ScreenW = w
			cfg.ScreenH = h
		}
		runErr = tui.Run(game, env.store, cfg, env.announcer())
	}

	// Close store before potential exit
	env.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
