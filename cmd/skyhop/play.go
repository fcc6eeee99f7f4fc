package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quietbit/skyhop/internal/core"
	"github.com/quietbit/skyhop/internal/game"
	"github.com/quietbit/skyhop/internal/platform/audio"
	"github.com/quietbit/skyhop/internal/platform/tui"
	"github.com/quietbit/skyhop/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  Space/W/Up - Jump
  Enter      - Start (main menu)
  R          - Restart (after game over)
  B/Esc      - Back to menu (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  skyhop play
  skyhop play --seed 42
  skyhop play --mute
  skyhop play --config ./my-skyhop.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	g := game.New()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Sound is best-effort; headless hosts play muted
	var sounds *audio.SoundManager
	if !flagMute {
		sounds = audio.NewSoundManager()
		if soundErr := sounds.Initialize(); soundErr != nil {
			sounds = nil
		}
	}

	runErr := tui.Run(g, store, sounds, cfg)

	if sounds != nil {
		sounds.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
