// Package grid adapts an external cell grid into board coordinates.
//
// A grid is a set of cells addressed by (row, column), each carrying one
// fill level. The engine reads and writes levels only through Renderer, so
// the same game runs against an in-memory fake or a parsed profile page.
package grid

// Level is the fill level of a cell. The string values are the visual
// protocol shared with whatever paints the cells.
type Level string

const (
	LevelEmpty    Level = "0"
	LevelFlashing Level = "1"
	LevelFilled   Level = "2"
	LevelActive   Level = "4"
)

// Valid reports whether l is one of the recognized levels.
func (l Level) Valid() bool {
	switch l {
	case LevelEmpty, LevelFlashing, LevelFilled, LevelActive:
		return true
	}
	return false
}

// String returns a readable name, used in logs and test failures.
func (l Level) String() string {
	switch l {
	case LevelEmpty:
		return "empty"
	case LevelFlashing:
		return "flashing"
	case LevelFilled:
		return "filled"
	case LevelActive:
		return "active"
	default:
		return "level(" + string(l) + ")"
	}
}

// Renderer reads and writes cell levels.
// Coordinates without a cell are absent: SetLevel ignores them and
// Level reports ok == false. Neither ever fails.
type Renderer interface {
	SetLevel(row, col int, level Level)
	Level(row, col int) (level Level, ok bool)
}

// Layout is the board geometry. Rows and Columns are configuration,
// never derived from what a page happens to contain.
type Layout struct {
	Rows    int
	Columns int

	// Sentinel admits one extra column at index -1. A page whose index
	// attribute is 0-based, read with a 1-based adapter, places its first
	// week there.
	Sentinel bool
}

// FirstColumn returns the lowest column index the layout admits.
func (l Layout) FirstColumn() int {
	if l.Sentinel {
		return -1
	}
	return 0
}

// Contains reports whether (row, col) is inside the layout.
func (l Layout) Contains(row, col int) bool {
	return row >= 0 && row < l.Rows && col >= l.FirstColumn() && col < l.Columns
}
