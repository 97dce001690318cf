package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridtris/internal/config"
	"github.com/vovakirdan/gridtris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServePage   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve [profile-url]",
	Short: "Start the gridtris SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game on its own copy of the grid.
The grid is a profile page (--page or a URL, loaded once at startup)
or a blank 7x52 grid.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridtris/host_key

Examples:
  gridtris serve                                  # Listen on :23234, blank grid
  gridtris serve --ssh :2222                      # Listen on port 2222
  gridtris serve https://github.com/octocat       # Everyone plays on octocat's calendar
  gridtris serve --page ./octocat.html --variant classic

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServePage, "page", "", "Path to a saved profile page")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridtris-ssh",
	})

	game, err := config.Load(flagConfig, flagVariant)
	if err != nil {
		return err
	}

	var url string
	if len(args) == 1 {
		url = args[0]
	}
	src, err := resolveSource(cmd.Context(), game, flagServePage, url, logger)
	if err != nil {
		return err
	}
	// Fail at startup rather than on the first connection.
	if _, err := src.Open(); err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Game = game
	cfg.Source = src
	cfg.HostKeyPath = flagHostKey
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting gridtris SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
