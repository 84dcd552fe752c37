// invaders is a terminal Space Invaders game.
//
// Usage:
//
//	invaders list              - List available game variants
//	invaders play [variant]    - Play (default: invaders)
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--log-level <level>    - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Shoot down the alien formation before it reaches your ship.

Available commands:
  list     - Show all game variants
  play     - Start a game

Examples:
  invaders play
  invaders play --endless --difficulty hard
  invaders play --name Ripley --mute`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
