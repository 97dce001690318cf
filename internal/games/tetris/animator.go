package tetris

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gridtris/internal/grid"
)

// batch is a group of columns that filled up on the same landing.
type batch struct {
	columns []int
	toggles int
}

// Animator flashes full columns before they are removed. Every batch runs
// on the flash timer, independent of the piece: a new piece may fall while a
// batch is still flashing.
type Animator struct {
	toggles int
	batches []*batch
	pending mapset.Set[int]
}

// NewAnimator creates an animator that toggles each batch the given number
// of times before clearing it.
func NewAnimator(toggles int) *Animator {
	return &Animator{
		toggles: toggles,
		pending: mapset.New[int](),
	}
}

// Active reports whether any batch is still flashing.
func (a *Animator) Active() bool {
	return len(a.batches) > 0
}

// Batches returns the number of running batches.
func (a *Animator) Batches() int {
	return len(a.batches)
}

// Pending reports whether col belongs to a running batch.
func (a *Animator) Pending(col int) bool {
	return a.pending.Has(col)
}

// Schedule starts a batch for the columns in full that are not already
// flashing. It returns the columns it took.
func (a *Animator) Schedule(full mapset.Set[int]) []int {
	var cols []int
	full.Each(func(col int) {
		if !a.pending.Has(col) {
			cols = append(cols, col)
		}
	})
	if len(cols) == 0 {
		return nil
	}
	slices.Sort(cols)

	for _, col := range cols {
		a.pending.Put(col)
	}
	a.batches = append(a.batches, &batch{columns: cols})
	return cols
}

// Step advances every batch by one flash tick. Batches that have used up
// their toggles have their cells emptied, and their columns are returned
// together, sorted, so they can be compacted in a single pass. The caller
// must then report each removed column through Shift.
func (a *Animator) Step(b *Board) []int {
	var done []int
	running := a.batches[:0]
	for _, bt := range a.batches {
		if bt.toggles < a.toggles {
			lvl := grid.LevelFlashing
			if bt.toggles%2 == 1 {
				lvl = grid.LevelFilled
			}
			b.setColumns(bt.columns, lvl)
			bt.toggles++
			running = append(running, bt)
			continue
		}

		b.setColumns(bt.columns, grid.LevelEmpty)
		for _, col := range bt.columns {
			a.pending.Remove(col)
		}
		done = append(done, bt.columns...)
	}
	a.batches = running
	slices.Sort(done)
	return done
}

// Shift renumbers pending columns after column k was removed: everything to
// its right moved one step left.
func (a *Animator) Shift(k int) {
	next := mapset.New[int]()
	for _, bt := range a.batches {
		for i, col := range bt.columns {
			if col > k {
				bt.columns[i] = col - 1
			}
			next.Put(bt.columns[i])
		}
	}
	a.pending = next
}
