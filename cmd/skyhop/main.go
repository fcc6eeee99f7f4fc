// skyhop is a terminal platformer: hop across procedurally generated
// platforms, grab the fruit, climb the levels.
//
// Usage:
//
//	skyhop play              - Play in the current terminal
//	skyhop serve             - Start SSH server for remote play
//	skyhop scores            - Show best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--db <path>     - Set database path (default: ~/.skyhop/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Skyhop - a platformer in your terminal",
	Long: `Skyhop is a terminal platformer. Each level is a procedurally
generated set of platforms with a single fruit to collect; grabbing it
regenerates the layout and bumps the level. Fall off the screen three
times and the run ends.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  skyhop play
  skyhop play --seed 42
  skyhop serve --ssh :2222
  skyhop scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
