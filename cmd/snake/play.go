package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger("snake")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	logger.Info("config loaded", "source", source)

	// Warn early; the game also shows a message until the window is large enough.
	needW := cfg.Grid.Width*cfg.Grid.CellWidth + 2
	needH := cfg.Grid.Height + 4
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		cliLog.Warn("terminal smaller than the playfield", "have", fmt.Sprintf("%dx%d", w, h),
			"need", fmt.Sprintf("%dx%d", needW, needH))
	}

	if err := tui.Run(cfg, resolveSeed(cmd, cfg), logger); err != nil {
		cliLog.Fatal("error running game", "error", err)
	}
	return nil
}
