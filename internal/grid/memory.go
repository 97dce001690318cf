package grid

// Memory is an in-memory Renderer with a cell at every in-layout coordinate.
// It stands in for a page in tests and when no page is given.
type Memory struct {
	layout Layout
	cells  [][]Level // [row][col - FirstColumn]
}

// NewMemory creates a grid with every cell empty.
func NewMemory(layout Layout) *Memory {
	width := layout.Columns - layout.FirstColumn()
	m := &Memory{
		layout: layout,
		cells:  make([][]Level, layout.Rows),
	}
	for r := range m.cells {
		m.cells[r] = make([]Level, width)
		for c := range m.cells[r] {
			m.cells[r][c] = LevelEmpty
		}
	}
	return m
}

// Layout returns the geometry the grid was built with.
func (m *Memory) Layout() Layout {
	return m.layout
}

// SetLevel implements Renderer.
func (m *Memory) SetLevel(row, col int, level Level) {
	if !m.layout.Contains(row, col) {
		return
	}
	m.cells[row][col-m.layout.FirstColumn()] = level
}

// Level implements Renderer.
func (m *Memory) Level(row, col int) (Level, bool) {
	if !m.layout.Contains(row, col) {
		return "", false
	}
	return m.cells[row][col-m.layout.FirstColumn()], true
}
