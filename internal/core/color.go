package core

// Color represents a foreground color for a screen cell.
// Values map to lipgloss styles in the terminal platform.
type Color uint8

// Predefined colors. The four level colors follow the contribution
// calendar palette, from an empty day to the busiest one.
const (
	ColorDefault Color = iota
	ColorLevelEmpty
	ColorLevelFlash
	ColorLevelFilled
	ColorLevelActive
	ColorMuted
	ColorAccent
	ColorAlert
)
