package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridtris/internal/core"
	"github.com/vovakirdan/gridtris/internal/games/tetris"
	"github.com/vovakirdan/gridtris/internal/grid"
)

// colorStyles maps core.Color to lipgloss styles. The level colors are the
// contribution calendar's greens.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorLevelEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorLevelFlash:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorLevelFilled: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorLevelActive: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorMuted:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAccent:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorAlert:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// levelColors is the CSS of the board: how each level is painted.
var levelColors = map[grid.Level]core.Color{
	grid.LevelEmpty:    core.ColorLevelEmpty,
	grid.LevelFlashing: core.ColorLevelFlash,
	grid.LevelFilled:   core.ColorLevelFilled,
	grid.LevelActive:   core.ColorLevelActive,
}

const cellRune = '■'

// cellWidth is how many screen columns one board column takes.
const cellWidth = 2

// boardSize returns the screen size of a board with its frame.
func boardSize(l grid.Layout) (w, h int) {
	cols := l.Columns - l.FirstColumn()
	return cols*cellWidth + 3, l.Rows + 2
}

// drawBoard paints b inside a frame whose top-left corner is at origin.
// Coordinates without a cell are left blank.
func drawBoard(scr *core.Screen, b *tetris.Board, origin core.Point) {
	l := b.Layout()
	w, h := boardSize(l)
	scr.DrawBox(core.NewRect(origin.X, origin.Y, w, h), core.ColorMuted)

	for row := 0; row < l.Rows; row++ {
		y := origin.Y + 1 + row
		for col := l.FirstColumn(); col < l.Columns; col++ {
			x := origin.X + 2 + (col-l.FirstColumn())*cellWidth
			lvl, ok := b.Level(core.Point{X: col, Y: row})
			if !ok {
				continue
			}
			c, known := levelColors[lvl]
			if !known {
				c = core.ColorDefault
			}
			scr.SetColored(x, y, cellRune, c)
		}
	}
}

// drawModal draws a framed message box centered on the screen.
func drawModal(scr *core.Screen, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 6
	height := len(lines) + 4

	r := core.NewRect((scr.Width()-width)/2, (scr.Height()-height)/2, width, height)
	scr.DrawRect(r, ' ')
	scr.DrawBox(r, core.ColorAlert)
	scr.DrawTextCentered(r.Y+1, title, core.ColorAlert)
	for i, l := range lines {
		scr.DrawTextCentered(r.Y+3+i, l, core.ColorMuted)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
