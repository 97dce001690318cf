package tetris

import (
	"github.com/vovakirdan/gridtris/internal/core"
	"github.com/vovakirdan/gridtris/internal/grid"
)

// Rotation is a quarter turn direction.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// Piece is the falling piece: a shape and the absolute position of each of
// its blocks. Blocks[0] is the pivot.
type Piece struct {
	Shape  int
	Blocks [4]core.Point
}

func newPiece(shape int, at core.Point) *Piece {
	p := &Piece{Shape: shape}
	for i, off := range shapeTable[shape].Blocks {
		p.Blocks[i] = at.Add(off)
	}
	return p
}

// Covers reports whether one of the piece's blocks is at pt.
func (p *Piece) Covers(pt core.Point) bool {
	for _, b := range p.Blocks {
		if b == pt {
			return true
		}
	}
	return false
}

func (p *Piece) translated(d core.Point) [4]core.Point {
	var out [4]core.Point
	for i, b := range p.Blocks {
		out[i] = b.Add(d)
	}
	return out
}

// rotated turns every block a quarter around the pivot, then shifts rows so
// the floored mean row stays where it was. Pieces fall sideways, so this
// keeps the piece vertically anchored.
func (p *Piece) rotated(dir Rotation) [4]core.Point {
	pivot := p.Blocks[0]
	var out [4]core.Point
	before, after := 0, 0
	for i, b := range p.Blocks {
		rx, ry := b.X-pivot.X, b.Y-pivot.Y
		if dir == Clockwise {
			out[i] = core.Point{X: pivot.X - ry, Y: pivot.Y + rx}
		} else {
			out[i] = core.Point{X: pivot.X + ry, Y: pivot.Y - rx}
		}
		before += b.Y
		after += out[i].Y
	}

	shift := core.FloorDiv(before, len(p.Blocks)) - core.FloorDiv(after, len(p.Blocks))
	for i := range out {
		out[i].Y += shift
	}
	return out
}

// shiftAfter moves blocks right of col one step left, following a compaction.
func (p *Piece) shiftAfter(col int) {
	for i := range p.Blocks {
		if p.Blocks[i].X > col {
			p.Blocks[i].X--
		}
	}
}

// spawnPoint returns where the next piece appears. The first piece may use
// its own column.
func (s *Session) spawnPoint() core.Point {
	col := s.cfg.Spawn.Column
	if s.spawned == 0 && s.cfg.Spawn.InitialColumn != nil {
		col = *s.cfg.Spawn.InitialColumn
	}
	return core.Point{X: col, Y: s.cfg.Spawn.Row}
}

// spawn deals the next shape. If any block lands on a present, non-empty
// cell the session is over. Blocks past the right edge have no cell and do
// not block.
func (s *Session) spawn() {
	shape := s.bag.Next()
	p := newPiece(shape, s.spawnPoint())
	s.spawned++

	for _, b := range p.Blocks {
		if s.board.IsOccupied(b.Y, b.X) {
			s.gameOver(p)
			return
		}
	}

	s.piece = p
	s.board.paint(p.Blocks, grid.LevelActive)
	s.logger.Debug("spawn", "shape", shapeTable[shape].Name, "at", p.Blocks[0])
}

// apply moves the piece to blocks if they all fit, clearing its old cells
// and painting the new ones. Nothing changes otherwise.
func (s *Session) apply(blocks [4]core.Point) bool {
	if !s.board.fits(blocks, s.piece) {
		return false
	}
	s.board.paint(s.piece.Blocks, grid.LevelEmpty)
	s.piece.Blocks = blocks
	s.board.paint(s.piece.Blocks, grid.LevelActive)
	return true
}

func (s *Session) moveLeft() bool {
	return s.apply(s.piece.translated(core.Point{X: -1}))
}

func (s *Session) moveVertical(dy int) bool {
	return s.apply(s.piece.translated(core.Point{Y: dy}))
}

func (s *Session) rotate(dir Rotation) bool {
	return s.apply(s.piece.rotated(dir))
}

// step moves the piece left, or lands it and spawns the next one.
func (s *Session) step() {
	if s.moveLeft() {
		return
	}
	s.land()
}

// drop moves the piece left until blocked, writing each position on the
// way, then lands it.
func (s *Session) drop() {
	for s.moveLeft() {
	}
	s.land()
}

// land converts the piece into filled cells, hands full columns to the
// animator and spawns the next piece.
func (s *Session) land() {
	p := s.piece
	s.piece = nil
	s.landCells(p.Blocks)
	s.landed++
	s.logger.Debug("land", "shape", shapeTable[p.Shape].Name, "at", p.Blocks[0])

	s.clearFull()
	s.spawn()
}

// landCells marks every present block cell filled. Cells already filled are
// left alone, so landing twice on the same cells writes nothing.
func (s *Session) landCells(blocks [4]core.Point) {
	for _, b := range blocks {
		lvl, ok := s.board.Level(b)
		if !ok || lvl == grid.LevelFilled {
			continue
		}
		s.board.set(b, grid.LevelFilled)
	}
}
