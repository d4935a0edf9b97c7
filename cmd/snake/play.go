package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagSpeed   string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/hjkl - Turn
  P/Space          - Pause
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

After a collision the game restarts on its own once the restart delay
has passed.

Speed options:
  easy   - 6 moves per second
  normal - 10 moves per second
  hard   - 15 moves per second

Examples:
  snake play
  snake play --speed hard
  snake play --seed 42 --log-file ./snake.log
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded when unset)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagSpeed)
	if err != nil {
		fail("%v", err)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			fail("cannot open log file: %v", openErr)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out, "snake")
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.TickInterval(),
		Seed:         flagSeed,
	}
	rc.Seed = rc.ResolveSeed()

	ctrl := snake.NewController(cfg.Settings(rc.Seed))
	if runErr := tui.Run(ctrl, rc, logger); runErr != nil {
		fail("%v", runErr)
	}
}
