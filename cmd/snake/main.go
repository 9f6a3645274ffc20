// snake is a terminal snake game.
//
// Usage:
//
//	snake                    - Play with the effective configuration
//	snake sim                - Run the simulation headless and print the result
//	snake config             - Print the effective configuration
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Config file (default: ~/.snake/config.yaml, ./configs/snake.yaml, built-in)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log <path>    - Write debug logs to a file
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogPath string
)

// cliLog reports CLI errors on stderr.
var cliLog = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "snake",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		cliLog.Fatal("command failed", "error", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal snake game on a fixed grid.

Controls:
  Arrows/WASD/HJKL - Turn
  Space/P          - Pause
  Esc/Q/Ctrl+C     - Quit

Any key leaves the welcome screen. Hitting a wall or yourself resets the
round; your best score for the session is kept.

Examples:
  snake
  snake --seed 42
  snake --config ./my-snake.yaml --log /tmp/snake.log
  snake sim --ticks 200 --script "3:down,9:left"
  snake serve --ssh :2222`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the effective configuration.
func loadConfig() (config.Config, string, error) {
	return config.Load(flagConfig)
}

// resolveSeed prefers --seed, then the config file.
func resolveSeed(cmd *cobra.Command, cfg config.Config) int64 {
	if cmd.Flags().Changed("seed") {
		return flagSeed
	}
	return cfg.Seed
}

// openLogger returns a debug logger writing to --log, or a discarding one.
// The returned closer must be called when done.
func openLogger(prefix string) (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
