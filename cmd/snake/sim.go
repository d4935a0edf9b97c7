package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagTicks    int
	flagMoves    string
	flagSimSpeed string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a terminal",
	Long: `Run the game engine headless and print the final state as YAML.

--moves is read one character per tick: U, D, L, R request a turn,
'.' keeps the current heading. Turns are validated the same way as
key presses, so a reversal is ignored. The run stops at game over or
after --ticks ticks, whichever comes first.

Examples:
  snake sim --seed 7 --ticks 20
  snake sim --seed 7 --moves RRDDL..UU`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks to run (default: length of --moves)")
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Scripted turns, one per tick: U D L R or '.'")
	simCmd.Flags().StringVar(&flagSimSpeed, "speed", "", "Speed preset: easy, normal, hard")
}

// parseMoves turns a move script into directions. '.' maps to DirNone.
func parseMoves(script string) ([]snake.Direction, error) {
	moves := make([]snake.Direction, 0, len(script))
	for i, r := range []rune(script) {
		if r == '.' {
			moves = append(moves, snake.DirNone)
			continue
		}
		d, ok := snake.ParseDirection(string(r))
		if !ok {
			return nil, fmt.Errorf("invalid move %q at position %d", r, i)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// simulate runs the controller for up to ticks ticks and returns the final snapshot.
func simulate(ctrl *snake.Controller, moves []snake.Direction, ticks int, logger *log.Logger) snake.Snapshot {
	prev := ctrl.Snapshot()
	for i := 0; i < ticks && !ctrl.IsGameOver(); i++ {
		if i < len(moves) && moves[i] != snake.DirNone {
			if !ctrl.RequestDirectionChange(moves[i]) {
				logger.Debug("turn ignored", "tick", i+1, "requested", moves[i], "heading", ctrl.Heading())
			}
		}
		ctrl.Tick(snake.DirNone)

		cur := ctrl.Snapshot()
		switch {
		case cur.Won:
			logger.Info("board cleared", "tick", cur.Tick, "length", cur.Length())
		case cur.GameOver:
			logger.Info("game over", "tick", cur.Tick, "length", cur.Length(), "head", cur.Head())
		case cur.Length() > prev.Length():
			logger.Info("food eaten", "tick", cur.Tick, "length", cur.Length())
		}
		prev = cur
	}
	return prev
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagSimSpeed)
	if err != nil {
		fail("%v", err)
	}
	logger, err := newLogger(os.Stderr, "snake-sim")
	if err != nil {
		fail("%v", err)
	}
	moves, err := parseMoves(flagMoves)
	if err != nil {
		fail("%v", err)
	}

	ticks := flagTicks
	if ticks <= 0 {
		ticks = len(moves)
	}

	rc := core.RuntimeConfig{Seed: flagSeed}
	seed := rc.ResolveSeed()
	logger.Info("simulating", "seed", seed, "ticks", ticks)

	ctrl := snake.NewController(cfg.Settings(seed))
	snap := simulate(ctrl, moves, ticks, logger)

	out, err := yaml.Marshal(snap)
	if err != nil {
		fail("encoding snapshot: %v", err)
	}
	os.Stdout.Write(out)
}
