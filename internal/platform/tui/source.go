package tui

import (
	"bytes"
	"fmt"

	"github.com/vovakirdan/gridtris/internal/grid"
)

// Source builds the grid a session plays on. Reloading a game opens the
// source again, so every session starts from a pristine grid.
type Source struct {
	Name string
	Open func() (grid.Renderer, error)
}

// MemorySource plays on an in-memory grid.
func MemorySource(layout grid.Layout) Source {
	return Source{
		Name: "memory",
		Open: func() (grid.Renderer, error) {
			return grid.NewMemory(layout), nil
		},
	}
}

// PageSource plays on a profile page document, parsed fresh on every open.
func PageSource(name string, page []byte, opts grid.PageOptions) Source {
	return Source{
		Name: name,
		Open: func() (grid.Renderer, error) {
			p, err := grid.ParsePage(bytes.NewReader(page), opts)
			if err != nil {
				return nil, fmt.Errorf("tui: open %s: %w", name, err)
			}
			return p, nil
		},
	}
}
