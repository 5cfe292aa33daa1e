package svgdoc

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is the closed set of paint values understood by the
// renderer. A nil Color means "no paint" and renders as the
// literal token "none".
// Every Color is also an image/color.Color, so that painting
// drivers may consume it directly.
type Color interface {
	color.Color

	// token as written in markup attributes
	token() string
}

// NamedColor is one of the supported SVG color keywords.
type NamedColor uint8

const (
	Black NamedColor = iota
	White
	Red
	Green
	Blue
)

var colorNames = [...]string{
	Black: "black",
	White: "white",
	Red:   "red",
	Green: "green",
	Blue:  "blue",
}

func (c NamedColor) token() string { return colorNames[c] }

// String returns the markup token of the color.
func (c NamedColor) String() string { return c.token() }

// RGBA implements image/color.Color, resolving the keyword
// to its standard value.
func (c NamedColor) RGBA() (r, g, b, a uint32) {
	return colornames.Map[c.token()].RGBA()
}

// RGB is an explicit 8 bits color, rendered as "rgb(r,g,b)".
type RGB struct {
	R, G, B uint8
}

func (c RGB) token() string { return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B) }

// String returns the markup token of the color.
func (c RGB) String() string { return c.token() }

// RGBA implements image/color.Color (the color is fully opaque).
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// colorToken renders an optional color attribute value.
func colorToken(c Color) string {
	if c == nil {
		return "none"
	}
	return c.token()
}
