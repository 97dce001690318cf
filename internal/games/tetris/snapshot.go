package tetris

import "github.com/vovakirdan/gridtris/internal/core"

// Snapshot captures session state for tests and the status line.
type Snapshot struct {
	ID       string
	Tick     uint64
	State    State
	Shape    string // Empty when no piece is falling
	Blocks   []core.Point
	Spawned  int
	Landed   int
	Cleared  int
	Flashing int // Running clear batches
	BagLeft  int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:       s.id,
		Tick:     s.ticks,
		State:    s.state,
		Spawned:  s.spawned,
		Landed:   s.landed,
		Cleared:  s.cleared,
		Flashing: s.animator.Batches(),
		BagLeft:  s.bag.Remaining(),
	}
	if s.piece != nil {
		snap.Shape = shapeTable[s.piece.Shape].Name
		snap.Blocks = append(snap.Blocks, s.piece.Blocks[:]...)
	}
	return snap
}
