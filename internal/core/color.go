package core

import "fmt"

// Color represents a foreground color for a screen cell or a game entity.
// Frontends map it to ANSI 256-color codes or RGBA values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorOrange
	ColorGray
)

// String returns the lowercase color name used in rule files.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// ParseColor returns the color for a lowercase name.
func ParseColor(name string) (Color, bool) {
	switch name {
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "white":
		return ColorWhite, true
	case "orange":
		return ColorOrange, true
	case "gray":
		return ColorGray, true
	case "default":
		return ColorDefault, true
	}
	return ColorDefault, false
}

// UnmarshalText lets colors appear by name in YAML documents.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := ParseColor(string(text))
	if !ok {
		return &UnknownColorError{Name: string(text)}
	}
	*c = parsed
	return nil
}

// MarshalText writes the color name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnknownColorError is returned when a color name is not recognized.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("core: unknown color %q", e.Name)
}
