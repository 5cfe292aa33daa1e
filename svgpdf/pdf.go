// Implements a PDF backend to draw documents,
// by wrapping github.com/benoitkugler/pdf.
package svgpdf

import (
	"github.com/benoitkugler/minisvg/svgdoc"
	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdoc.Driver  = Renderer{}
	_ svgdoc.Filler  = (*filler)(nil)
	_ svgdoc.Stroker = (*stroker)(nil)
)

// Renderer writes the draw operations as content stream operators.
type Renderer struct {
	pdf *contentstream.Appearance
}

// NewRenderer returns a renderer which will write to the given `pdf`.
func NewRenderer(pdf *contentstream.Appearance) Renderer {
	return Renderer{pdf: pdf}
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f svgdoc.Filler, s svgdoc.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, useNonZeroWinding: true}
	}
	if willStroke {
		// the stroke pass writes the path again: a painting
		// operator consumes the current path
		s = &stroker{pather: pather{pdf: r.pdf}}
	}
	return f, s
}

// RenderToPDF draws the document on a single page, sized from
// its view box, and writes the result to the named file.
func RenderToPDF(doc *svgdoc.Document, pdfName string) error {
	vb := doc.ViewBox()
	w, h := float64(vb.W), float64(vb.H)
	pdf := contentstream.NewAppearance(w, h)

	// svg is y-down, pdf is y-up
	pdf.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, -float64(vb.MinX), h + float64(vb.MinY)}},
	)
	if bg := doc.Background(); bg != nil {
		pdf.SetColorFill(bg)
		pdf.Ops(
			contentstream.OpMoveTo{X: float64(vb.MinX), Y: float64(vb.MinY)},
			contentstream.OpLineTo{X: float64(vb.MinX) + w, Y: float64(vb.MinY)},
			contentstream.OpLineTo{X: float64(vb.MinX) + w, Y: float64(vb.MinY) + h},
			contentstream.OpLineTo{X: float64(vb.MinX), Y: float64(vb.MinY) + h},
			contentstream.OpClosePath{},
			contentstream.OpFill{},
		)
	}

	doc.Draw(NewRenderer(&pdf))
	pdf.Ops(contentstream.OpRestore{})

	var page model.PageObject
	pdf.ApplyToPageObject(&page, true)

	var out model.Document
	out.Catalog.Pages.Kids = append(out.Catalog.Pages.Kids, &page)
	return out.WriteFile(pdfName, nil)
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *contentstream.Appearance
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation, while
// also writing the path
type stroker struct {
	pather
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() {}

func (p *pather) Start(a fixed.Point26_6) {
	x, y := fixedTof(a)
	p.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
}

func (p *pather) Line(b fixed.Point26_6) {
	x, y := fixedTof(b)
	p.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
}

func (p *pather) CubeBezier(b, c, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.Ops(contentstream.OpCubicTo{X1: cx0, Y1: cy0, X2: cx1, Y2: cy1, X3: x, Y3: y})
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.Ops(contentstream.OpClosePath{})
	}
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (f *filler) SetColor(c svgdoc.Color) {
	f.pdf.SetColorFill(c)
}

func (f *filler) Draw() {
	if f.useNonZeroWinding {
		f.pdf.Ops(contentstream.OpFill{})
	} else {
		f.pdf.Ops(contentstream.OpEOFill{})
	}
}

func (s *stroker) SetStrokeOptions(options svgdoc.StrokeOptions) {
	s.pdf.Ops(contentstream.OpSetLineWidth{W: float64(options.LineWidth) / 64})
}

func (s *stroker) SetColor(c svgdoc.Color) {
	s.pdf.SetColorStroke(c)
}

func (s *stroker) Draw() {
	s.pdf.Ops(contentstream.OpStroke{})
}
