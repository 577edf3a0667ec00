package core

import "strings"

// Color is the content of a single grid cell.
// The zero value is ColorEmpty, so a freshly allocated grid is all cleared cells.
type Color uint8

const (
	ColorEmpty Color = iota // Cleared/vacant cell, never a flood-fill target
	ColorRed
	ColorGreen
	ColorBlue
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorEmpty:
		return "empty"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorEmpty:
		return '.'
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	default:
		return '?'
	}
}

// IsEmpty reports whether the cell has been cleared.
func (c Color) IsEmpty() bool {
	return c == ColorEmpty
}

// ParseColor converts a name or a single letter to a Color.
// "." and "empty" map to ColorEmpty. Returns ColorEmpty and false if the
// string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "empty", ".":
		return ColorEmpty, true
	default:
		return ColorEmpty, false
	}
}

// PaintColors returns the colors a generator may place and a player may paint with.
func PaintColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue}
}
