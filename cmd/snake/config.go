package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagConfigSpeed string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Config search order:
  1. --config path
  2. ~/.snake/config.yaml
  3. ./configs/snake.yaml
  4. built-in defaults

Examples:
  snake config > ~/.snake/config.yaml
  snake config --speed hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigSpeed, "speed", "", "Speed preset: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagConfigSpeed)
	if err != nil {
		fail("%v", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(out)
}
