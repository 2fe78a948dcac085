package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/destroyer/internal/core"
	"github.com/vovakirdan/destroyer/internal/games/destroyer"
	"github.com/vovakirdan/destroyer/internal/platform/tui"
	"github.com/vovakirdan/destroyer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in the terminal. The game defaults to destroyer.

Controls:
  Space/P       - Shoot from the lead player
  Left/A        - Turn left
  Right/D       - Turn right
  R             - Restart level
  N             - Next level
  Esc           - Pause
  ?             - More keys
  Q/Ctrl+C      - Quit

Logs are written only when --log-file is set, so they never draw over
the game.

Examples:
  destroyer play
  destroyer play --seed 42
  destroyer play --compat legacy --log-file destroyer.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := destroyer.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'destroyer list' to see available games", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	destroyer.SetConfig(cfg)
	destroyer.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, runtime, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
