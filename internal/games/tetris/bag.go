package tetris

import "math/rand"

// Bag deals shape table indices. Each refill holds every index once,
// shuffled, so any TableSize draws starting from an empty bag cover the
// whole table.
type Bag struct {
	rng   *rand.Rand
	size  int
	queue []int
}

// NewBag creates an empty bag over indices [0, size).
func NewBag(rng *rand.Rand, size int) *Bag {
	return &Bag{
		rng:   rng,
		size:  size,
		queue: make([]int, 0, size),
	}
}

// Next pops the next index, refilling the bag first when it is empty.
func (b *Bag) Next() int {
	if len(b.queue) == 0 {
		b.refill()
	}
	last := len(b.queue) - 1
	i := b.queue[last]
	b.queue = b.queue[:last]
	return i
}

// Remaining returns how many indices are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.queue)
}

func (b *Bag) refill() {
	b.queue = b.queue[:0]
	for i := 0; i < b.size; i++ {
		b.queue = append(b.queue, i)
	}
	// Fisher-Yates
	for i := len(b.queue) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	}
}
