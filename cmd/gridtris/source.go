package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridtris/internal/activation"
	"github.com/vovakirdan/gridtris/internal/config"
	"github.com/vovakirdan/gridtris/internal/platform/tui"
)

var notificationStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("9")).
	Padding(0, 2)

// notify prints a notification box to stderr.
func notify(n activation.Notification) {
	title := lipgloss.NewStyle().Bold(true).Render(n.Title)
	fmt.Fprintln(os.Stderr, notificationStyle.Render(title+"\n\n"+n.Message))
}

// resolveSource picks the grid to play on: a saved page file, a profile URL
// or, with neither, a blank in-memory grid.
func resolveSource(ctx context.Context, cfg config.Config, pagePath, url string, logger *log.Logger) (tui.Source, error) {
	opts := cfg.PageOptions()
	opts.Logger = logger

	switch {
	case pagePath != "" && url != "":
		return tui.Source{}, fmt.Errorf("give either --page or a profile URL, not both")

	case pagePath != "":
		data, err := os.ReadFile(pagePath)
		if err != nil {
			return tui.Source{}, fmt.Errorf("cannot read page: %w", err)
		}
		return tui.PageSource(filepath.Base(pagePath), data, opts), nil

	case url != "":
		if n, ok := activation.Check(url); !ok {
			notify(n)
			return tui.Source{}, fmt.Errorf("not a profile page: %s", url)
		}
		logger.Info("fetching profile page", "url", url)
		data, err := activation.Fetch(ctx, url)
		if err != nil {
			return tui.Source{}, err
		}
		return tui.PageSource(url, data, opts), nil
	}

	return tui.MemorySource(cfg.Layout()), nil
}
