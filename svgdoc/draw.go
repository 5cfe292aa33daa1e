package svgdoc

import (
	"golang.org/x/image/math/fixed"
)

// Given a built document, implements how to draw it on an output
// device. This requires a driver implementing the actual draw
// operations, such as a rasterizer to output .png images or a pdf
// writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG knowledge.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor sets the color used by Draw
	SetColor(c Color)

	// Draw paints the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// SetWinding decides to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// SetStrokeOptions parametrizes the stroking of the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and will be called
	// before drawing every path. If the `willXXX` boolean is false,
	// the returned drawer should be nil to avoid useless operations.
	// Each pass is sent to exactly one drawer, and the fill pass is
	// completed before the stroke pass begins, so the two returned
	// drawers may share backend state.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// replay sends the accumulated commands to the drawer, in order.
// A MoveTo implicitly stops the current subpath; raw rules are
// markup only and carry nothing to replay.
func (p Path) replay(d Drawer) {
	for _, op := range p.ops {
		switch op := op.(type) {
		case MoveTo:
			d.Stop(false)
			d.Start(toFixedP(op.X, op.Y))
		case LineTo:
			d.Line(toFixedP(op.X, op.Y))
		case CubicTo:
			d.CubeBezier(toFixedP(op[0].X, op[0].Y),
				toFixedP(op[1].X, op[1].Y), toFixedP(op[2].X, op[2].Y))
		case Close:
			d.Stop(true)
		}
	}
	d.Stop(false)
}

// Draw replays the document into the driver `d`, path by path in
// insertion order: for each path a fill pass, then a stroke pass.
// A nil color disables the corresponding pass, matching the "none"
// token of the markup output.
func (doc *Document) Draw(d Driver) {
	for _, p := range doc.paths {
		filler, stroker := d.SetupDrawers(p.fill != nil, p.stroke != nil)

		if filler != nil { // nil drawer disables filling
			filler.Clear()
			filler.SetWinding(true)
			p.replay(filler)
			filler.SetColor(p.fill)
			filler.Draw()
		}

		if stroker != nil { // nil drawer disables stroking
			stroker.Clear()
			stroker.SetStrokeOptions(StrokeOptions{LineWidth: fixed.Int26_6(p.width * 64)})
			p.replay(stroker)
			stroker.SetColor(p.stroke)
			stroker.Draw()
		}
	}
}
