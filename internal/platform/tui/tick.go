// Package tui hosts game sessions in a terminal with Bubble Tea.
// It drives the two session timers, routes keys to actions and paints the
// board the way a profile page would.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AdvanceMsg is one tick of the advance timer.
type AdvanceMsg struct {
	Gen  int // Session generation the tick belongs to
	Time time.Time
}

// FlashMsg is one tick of the flash timer.
type FlashMsg struct {
	Gen  int
	Time time.Time
}

// advanceCmd schedules the next advance tick.
func advanceCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return AdvanceMsg{Gen: gen, Time: t}
	})
}

// flashCmd schedules the next flash tick.
func flashCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FlashMsg{Gen: gen, Time: t}
	})
}
