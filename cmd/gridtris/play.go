package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridtris/internal/config"
	"github.com/vovakirdan/gridtris/internal/core"
	"github.com/vovakirdan/gridtris/internal/platform/tui"
)

var (
	flagPage    string
	flagLogFile string
	flagSave    string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play [profile-url]",
	Short: "Play in the terminal",
	Long: `Start a game on a profile page's contribution calendar.

The grid comes from, in order:
  --page <file>   - A saved profile page
  <profile-url>   - A profile page fetched over HTTPS
  (nothing)       - A blank 7x52 grid

Controls depend on the variant; run 'gridtris keys' to list them.
  Ctrl+S  - Save a snapshot (page HTML, or screen text on a blank grid)
  Ctrl+R  - Reload: start over on a fresh copy of the grid
  Esc     - Quit

Examples:
  gridtris play https://github.com/octocat
  gridtris play --page ./octocat.html --save ./after.html
  gridtris play --variant classic --seed 42
  gridtris play --log-file ./gridtris.log --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPage, "page", "", "Path to a saved profile page")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded by default)")
	playCmd.Flags().StringVar(&flagSave, "save", "", "Write the final board to this file on exit")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log piece and column events")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig, flagVariant)
	if err != nil {
		return err
	}

	logger, closeLog, err := gameLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	var url string
	if len(args) == 1 {
		url = args[0]
	}
	src, err := resolveSource(cmd.Context(), cfg, flagPage, url, logger)
	if err != nil {
		return err
	}

	width, height := 120, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Source: src,
		Logger: logger,
	}, flagSave)
}

// gameLogger builds the logger for --log-file and --debug. The alt screen
// owns the terminal, so logs go to a file or nowhere.
func gameLogger() (*log.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeLog := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridtris",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeLog, nil
}
