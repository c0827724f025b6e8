// heartquest is Valentine's Heart Quest: steer a winged cupid to collect
// 50 points of falling hearts before the minute runs out.
//
// Usage:
//
//	heartquest               - Play in the terminal
//	heartquest play          - Same as above
//	heartquest list          - List available games
//	heartquest config        - Print the default display config
//	heartquest version       - Print version information
//
// Global flags:
//
//	--game <id>           - Game to play (default: hearts)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--backend <name>      - tui, tcell or window (default: tui)
//	--config <path>       - Custom display config YAML
//	--log-file <path>     - Write logs to a file
//	--mute                - Do not open the audio device
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/heart-quest/internal/games/hearts"
)

var (
	// Global flags
	flagGame    string
	flagSeed    int64
	flagBackend string
	flagConfig  string
	flagLogFile string
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heartquest",
	Short: "Valentine's Heart Quest - collect falling hearts before time runs out",
	Long: `Valentine's Heart Quest is a small arcade game. Move the cupid to
catch falling hearts: red ones are worth 1 point, gold ones 2 or 3.
Reach 50 points within 60 seconds to win.

Available commands:
  play     - Play the game (default)
  list     - Show all available games
  config   - Print the default display config
  version  - Print version information

Examples:
  heartquest
  heartquest --backend window
  heartquest play --seed 42
  heartquest config > ~/.heartquest/display.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagGame, "game", "hearts", "Game to play (see list)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendTUI, "Presenter: tui, tcell or window")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom display config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Do not initialize audio")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
