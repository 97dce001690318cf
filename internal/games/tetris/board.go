package tetris

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gridtris/internal/core"
	"github.com/vovakirdan/gridtris/internal/grid"
)

// Board answers collision queries against the grid and performs column
// compaction. It keeps no copy of the levels: the renderer is the board.
type Board struct {
	r      grid.Renderer
	layout grid.Layout
}

// NewBoard wraps a renderer with the given geometry.
func NewBoard(r grid.Renderer, layout grid.Layout) *Board {
	return &Board{r: r, layout: layout}
}

// Layout returns the board geometry.
func (b *Board) Layout() grid.Layout {
	return b.layout
}

// IsOccupied reports whether a cell exists at (row, col) and is not empty.
// Coordinates without a cell are never occupied.
func (b *Board) IsOccupied(row, col int) bool {
	lvl, ok := b.r.Level(row, col)
	return ok && lvl != grid.LevelEmpty
}

// Level returns the level at p, or ok == false when there is no cell.
func (b *Board) Level(p core.Point) (grid.Level, bool) {
	return b.r.Level(p.Y, p.X)
}

func (b *Board) set(p core.Point, lvl grid.Level) {
	b.r.SetLevel(p.Y, p.X, lvl)
}

// canEnter reports whether a block may move to p: the cell must exist and be
// either empty or already covered by the piece itself.
func (b *Board) canEnter(p core.Point, self *Piece) bool {
	lvl, ok := b.Level(p)
	if !ok {
		return false
	}
	return lvl == grid.LevelEmpty || (self != nil && self.Covers(p))
}

func (b *Board) fits(blocks [4]core.Point, self *Piece) bool {
	for _, p := range blocks {
		if !b.canEnter(p, self) {
			return false
		}
	}
	return true
}

// paint writes lvl to every present cell of blocks.
func (b *Board) paint(blocks [4]core.Point, lvl grid.Level) {
	for _, p := range blocks {
		if _, ok := b.Level(p); ok {
			b.set(p, lvl)
		}
	}
}

// FullColumns returns the columns whose every row is filled. A column with a
// missing cell is never full.
func (b *Board) FullColumns() mapset.Set[int] {
	full := mapset.New[int]()
	for col := b.layout.FirstColumn(); col < b.layout.Columns; col++ {
		if b.columnFull(col) {
			full.Put(col)
		}
	}
	return full
}

func (b *Board) columnFull(col int) bool {
	for row := 0; row < b.layout.Rows; row++ {
		lvl, ok := b.r.Level(row, col)
		if !ok || lvl != grid.LevelFilled {
			return false
		}
	}
	return true
}

// setColumns writes lvl to every cell of the given columns.
func (b *Board) setColumns(cols []int, lvl grid.Level) {
	for _, col := range cols {
		for row := 0; row < b.layout.Rows; row++ {
			b.r.SetLevel(row, col, lvl)
		}
	}
}

// Compact removes each column in cols by shifting every column to its right
// one step left. The rightmost column comes back empty. Columns are handled
// highest first so earlier shifts do not move later targets. The removed
// columns are returned in that order.
func (b *Board) Compact(cols []int) []int {
	order := slices.Clone(cols)
	slices.Sort(order)
	slices.Reverse(order)
	order = slices.Compact(order)

	last := b.layout.Columns - 1
	for _, k := range order {
		for col := k; col < last; col++ {
			for row := 0; row < b.layout.Rows; row++ {
				lvl, ok := b.r.Level(row, col+1)
				if !ok {
					lvl = grid.LevelEmpty
				}
				b.r.SetLevel(row, col, lvl)
			}
		}
		for row := 0; row < b.layout.Rows; row++ {
			b.r.SetLevel(row, last, grid.LevelEmpty)
		}
	}
	return order
}
