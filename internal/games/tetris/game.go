// Package tetris implements a block puzzle whose pieces fall sideways,
// toward column 0, across a grid of day cells. Full columns are removed and
// the stack to their right slides left to close the gap.
package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gridtris/internal/config"
	"github.com/vovakirdan/gridtris/internal/core"
	"github.com/vovakirdan/gridtris/internal/grid"
)

// State is the session lifecycle state.
type State string

const (
	StateRunning State = "running"
	StateOver    State = "over"
)

// Session holds everything one game needs. Sessions share no state, so
// several may run side by side.
//
// A session is not safe for concurrent use. The terminal host calls it from
// a single update loop.
type Session struct {
	id       string
	cfg      config.Config
	board    *Board
	bag      *Bag
	animator *Animator
	piece    *Piece
	state    State
	logger   *log.Logger

	ticks   uint64
	spawned int
	landed  int
	cleared int
}

// NewSession creates a session drawing on r. Pieces are dealt from a bag
// seeded with rt.Seed. A nil logger discards output.
func NewSession(r grid.Renderer, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := uuid.NewString()
	return &Session{
		id:       id,
		cfg:      cfg,
		board:    NewBoard(r, cfg.Layout()),
		bag:      NewBag(rand.New(rand.NewSource(rt.Seed)), TableSize),
		animator: NewAnimator(cfg.Timing.FlashToggles),
		state:    StateRunning,
		logger:   logger.With("session", id[:8]),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Board returns the session's board.
func (s *Session) Board() *Board {
	return s.board
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Over reports whether the game has ended.
func (s *Session) Over() bool {
	return s.state == StateOver
}

// Piece returns a copy of the falling piece, or nil between pieces and
// after game over.
func (s *Session) Piece() *Piece {
	if s.piece == nil {
		return nil
	}
	p := *s.piece
	return &p
}

// Animating reports whether cleared columns are still flashing.
func (s *Session) Animating() bool {
	return s.animator.Active()
}

// Start spawns the first piece. It does nothing once a piece exists or the
// game is over.
func (s *Session) Start() {
	if s.state == StateOver || s.piece != nil {
		return
	}
	s.logger.Info("session started",
		"variant", s.cfg.Variant,
		"rows", s.cfg.Board.Rows,
		"columns", s.cfg.Board.Columns,
	)
	s.spawn()
}

// Advance is one tick of the advance timer: the piece moves one column
// left, or lands and the next piece spawns. After game over it does nothing.
func (s *Session) Advance() {
	s.ticks++
	if s.state == StateOver {
		return
	}
	if s.piece == nil {
		s.spawn()
		return
	}
	s.step()
}

// Apply performs a player action. Unknown actions, and every action after
// game over, are ignored.
func (s *Session) Apply(a core.Action) {
	if s.state == StateOver || s.piece == nil {
		return
	}

	switch a {
	case core.ActionMoveUp:
		s.moveVertical(-1)
	case core.ActionMoveDown:
		s.moveVertical(1)
	case core.ActionRotateCW:
		s.rotate(Clockwise)
	case core.ActionRotateCCW:
		s.rotate(CounterClockwise)
	case core.ActionDrop:
		s.drop()
	}
}

// Flash is one tick of the flash timer. It reports whether more flash ticks
// are needed. Batches keep running after game over so the board settles.
func (s *Session) Flash() bool {
	if !s.animator.Active() {
		return false
	}
	if done := s.animator.Step(s.board); len(done) > 0 {
		s.compact(done)
	}
	return s.animator.Active()
}

// clearFull finds full columns after a landing. With flashing disabled they
// are removed at once; otherwise they join the animator.
func (s *Session) clearFull() {
	full := s.board.FullColumns()
	if full.Size() == 0 {
		return
	}

	if s.cfg.Timing.FlashToggles == 0 {
		cols := make([]int, 0, full.Size())
		full.Each(func(col int) { cols = append(cols, col) })
		s.board.setColumns(cols, grid.LevelEmpty)
		s.compact(cols)
		return
	}

	if cols := s.animator.Schedule(full); cols != nil {
		s.logger.Debug("columns flashing", "columns", cols)
	}
}

// compact removes cleared columns. The falling piece and any flashing
// columns right of a removed column move left with the stack, and the piece
// is painted again since the shift may have dragged empty cells over it.
func (s *Session) compact(cols []int) {
	removed := s.board.Compact(cols)
	for _, k := range removed {
		s.animator.Shift(k)
		if s.piece != nil {
			s.piece.shiftAfter(k)
		}
	}
	if s.piece != nil {
		s.board.paint(s.piece.Blocks, grid.LevelActive)
	}
	s.cleared += len(removed)
	s.logger.Debug("columns cleared", "columns", removed)
}

func (s *Session) gameOver(blocked *Piece) {
	s.state = StateOver
	s.piece = nil
	s.logger.Info("game over",
		"shape", shapeTable[blocked.Shape].Name,
		"pieces", s.spawned,
		"landed", s.landed,
		"cleared", s.cleared,
	)
}
