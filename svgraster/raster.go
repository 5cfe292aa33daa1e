// Implements a raster backend to draw documents,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/draw"

	"github.com/benoitkugler/minisvg/svgdoc"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdoc.Driver  = (*Renderer)(nil)
	_ svgdoc.Filler  = rasterFiller{}
	_ svgdoc.Stroker = rasterStroker{}
)

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instances
}

// NewRenderer returns a renderer drawing to the given scanner.
// In addition to rasterizing lines, it can also rasterize
// cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// RenderToImage uses a ScannerGV instance to draw the
// document into an image and returns it. The image dimensions
// are taken from the document view box.
func RenderToImage(doc *svgdoc.Document) *image.RGBA {
	vb := doc.ViewBox()
	img := image.NewRGBA(image.Rect(0, 0, vb.W, vb.H))

	if bg := doc.Background(); bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	scanner := rasterx.NewScannerGV(vb.W, vb.H, img, img.Bounds())
	renderer := NewRenderer(vb.W, vb.H, scanner)
	doc.Draw(renderer)
	return img
}

// SetupDrawers hands out one rasterizer per pass: the scanner is
// shared, so only one of them may receive commands at a time.
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdoc.Filler, s svgdoc.Stroker) {
	if willFill {
		f = rasterFiller{filler: rd.filler}
	}
	if willStroke {
		s = rasterStroker{dasher: rd.dasher}
	}
	return f, s
}

type rasterFiller struct {
	filler *rasterx.Filler
}

func (r rasterFiller) Clear() { r.filler.Clear() }

func (r rasterFiller) Start(a fixed.Point26_6) { r.filler.Start(a) }

func (r rasterFiller) Line(b fixed.Point26_6) { r.filler.Line(b) }

func (r rasterFiller) CubeBezier(b, c, d fixed.Point26_6) { r.filler.CubeBezier(b, c, d) }

func (r rasterFiller) Stop(closeLoop bool) { r.filler.Stop(closeLoop) }

func (r rasterFiller) SetWinding(useNonZeroWinding bool) { r.filler.SetWinding(useNonZeroWinding) }

func (r rasterFiller) SetColor(c svgdoc.Color) {
	r.filler.Scanner.SetColor(rasterx.ApplyOpacity(c, 1))
}

func (r rasterFiller) Draw() { r.filler.Draw() }

type rasterStroker struct {
	dasher *rasterx.Dasher
}

func (r rasterStroker) Clear() { r.dasher.Clear() }

func (r rasterStroker) Start(a fixed.Point26_6) { r.dasher.Start(a) }

func (r rasterStroker) Line(b fixed.Point26_6) { r.dasher.Line(b) }

func (r rasterStroker) CubeBezier(b, c, d fixed.Point26_6) { r.dasher.CubeBezier(b, c, d) }

func (r rasterStroker) Stop(closeLoop bool) { r.dasher.Stop(closeLoop) }

func (r rasterStroker) SetStrokeOptions(options svgdoc.StrokeOptions) {
	r.dasher.SetStroke(
		options.LineWidth, fixed.Int26_6(4*64), rasterx.ButtCap, rasterx.ButtCap,
		rasterx.FlatGap, rasterx.Bevel, nil, 0,
	)
}

func (r rasterStroker) SetColor(c svgdoc.Color) {
	r.dasher.Scanner.SetColor(rasterx.ApplyOpacity(c, 1))
}

func (r rasterStroker) Draw() { r.dasher.Draw() }
