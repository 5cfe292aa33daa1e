package svgdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// This file defines the basic path structure

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathCubicTo
	pathClose
	pathRaw
)

// Operation groups the different path commands
type Operation interface {
	command() pathCommand
}

// Point is a coordinate pair, in the user units of the view box.
type Point struct {
	X, Y float64
}

type MoveTo Point

type LineTo Point

// CubicTo stores the two control points, then the end point.
type CubicTo [3]Point

type Close struct{}

// rawRule is a pre-formatted command string, kept verbatim.
type rawRule string

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }
func (rawRule) command() pathCommand { return pathRaw }

// Path accumulates drawing commands and the style they are painted
// with. The insertion order of the commands defines the shape and is
// preserved exactly; no validation connects one command to the next.
// The zero value is an empty path with no stroke and no fill.
type Path struct {
	ops    []Operation
	stroke Color
	fill   Color
	width  float64
}

// NewPath returns an empty path, all style fields unset.
func NewPath() Path { return Path{} }

// SetStrokeColor sets the stroke color.
// If unset, the path renders with stroke="none".
func (p *Path) SetStrokeColor(c Color) { p.stroke = c }

// SetFillColor sets the fill color.
// If unset, the path renders with fill="none".
func (p *Path) SetFillColor(c Color) { p.fill = c }

// SetStrokeWidth sets the stroke width.
// If unset, the path renders with stroke-width="0".
func (p *Path) SetStrokeWidth(width float64) { p.width = width }

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) { p.ops = append(p.ops, MoveTo{x, y}) }

// LineTo adds a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) { p.ops = append(p.ops, LineTo{x, y}) }

// Bezier adds a cubic curve from the current point to (x, y),
// guided by the control points (c1x, c1y) and (c2x, c2y).
func (p *Path) Bezier(c1x, c1y, c2x, c2y, x, y float64) {
	p.ops = append(p.ops, CubicTo{{c1x, c1y}, {c2x, c2y}, {x, y}})
}

// ClosePath closes the current subpath back to its start.
func (p *Path) ClosePath() { p.ops = append(p.ops, Close{}) }

// RawRule appends a pre-formatted command string, such as
// "M 0 0 L 100 100", without interpreting it. Raw rules appear
// verbatim in PathData but are ignored by Document.Draw.
func (p *Path) RawRule(rule string) { p.ops = append(p.ops, rawRule(rule)) }

// Undo removes the last command. It is a no-op on an empty path.
func (p *Path) Undo() {
	if len(p.ops) != 0 {
		p.ops = p.ops[:len(p.ops)-1]
	}
}

// formatFloat prints a coordinate as a plain decimal,
// without exponent or trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PathData returns the string representation of the commands, as
// used in the d attribute: one letter per command followed by its
// space-separated arguments, commands space-joined in insertion order.
func (p Path) PathData() string {
	chunks := make([]string, len(p.ops))
	for i, op := range p.ops {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M %s %s", formatFloat(op.X), formatFloat(op.Y))
		case LineTo:
			chunks[i] = fmt.Sprintf("L %s %s", formatFloat(op.X), formatFloat(op.Y))
		case CubicTo:
			chunks[i] = fmt.Sprintf("C %s %s %s %s %s %s",
				formatFloat(op[0].X), formatFloat(op[0].Y),
				formatFloat(op[1].X), formatFloat(op[1].Y),
				formatFloat(op[2].X), formatFloat(op[2].Y))
		case Close:
			chunks[i] = "Z"
		case rawRule:
			chunks[i] = string(op)
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of the path commands.
func (p Path) String() string { return p.PathData() }
