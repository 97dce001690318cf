package tetris

import "github.com/vovakirdan/gridtris/internal/core"

// Shape is one entry of the shape table. Blocks are offsets from the spawn
// point; the first block is the rotation pivot.
type Shape struct {
	Name   string
	Blocks [4]core.Point
}

// Shapes are laid on their side since pieces fall toward column 0.
// The table doubles as a frequency map: S and Z appear once, the rest twice,
// so a full bag deals S and Z half as often.
var shapeTable = [...]Shape{
	{"I", [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}},
	{"O", [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
	{"L", [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
	{"J", [4]core.Point{{X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
	{"T", [4]core.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
	{"I", [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}},
	{"O", [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
	{"L", [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
	{"J", [4]core.Point{{X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
	{"T", [4]core.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
	{"Z", [4]core.Point{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
	{"S", [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
}

// TableSize is the number of entries in the shape table.
const TableSize = len(shapeTable)
