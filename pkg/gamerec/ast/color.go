package ast

import "fmt"

// Color is the category label a drawn quantity is tagged with.
type Color string

const (
	ColorRed   Color = "red"
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
)

// Colors lists every valid category label in canonical (red, green, blue) order.
var Colors = []Color{ColorRed, ColorGreen, ColorBlue}

// ParseColor converts a label into a Color.
// It returns an error for anything other than "red", "green" or "blue".
func ParseColor(s string) (Color, error) {
	switch Color(s) {
	case ColorRed, ColorGreen, ColorBlue:
		return Color(s), nil
	default:
		return "", fmt.Errorf("unknown color %q", s)
	}
}

// ColorNames returns the valid labels as strings.
func ColorNames() []string {
	names := make([]string, len(Colors))
	for i, c := range Colors {
		names[i] = string(c)
	}
	return names
}

// IsValid returns true if c is one of the three known labels.
func (c Color) IsValid() bool {
	_, err := ParseColor(string(c))
	return err == nil
}
