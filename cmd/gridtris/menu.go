package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridtris/internal/config"
	"github.com/vovakirdan/gridtris/internal/core"
	"github.com/vovakirdan/gridtris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu [profile-url]",
	Short: "Pick a variant interactively, then play",
	Long: `Start with a variant picker. After a game ends, you return to the
picker to play again. The grid is chosen as in 'gridtris play' and is
loaded fresh for every game.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected variant
  Q            - Quit

Examples:
  gridtris menu
  gridtris menu --page ./octocat.html
  gridtris menu --log-file ./gridtris.log --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPage, "page", "", "Path to a saved profile page")
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded by default)")
	menuCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log piece and column events")
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := gameLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	var url string
	if len(args) == 1 {
		url = args[0]
	}

	width, height := 120, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed}

	current := flagVariant
	for {
		result, err := tui.RunMenu(rt, current)
		if err != nil {
			return err
		}
		rt = result.Config
		if result.Quit {
			return nil
		}
		current = result.Variant

		cfg, err := config.Load(flagConfig, current)
		if err != nil {
			return err
		}
		src, err := resolveSource(cmd.Context(), cfg, flagPage, url, logger)
		if err != nil {
			return err
		}

		if err := tui.Run(tui.Options{Config: cfg, Runtime: rt, Source: src, Logger: logger}, ""); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
