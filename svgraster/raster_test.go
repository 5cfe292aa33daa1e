package svgraster

import (
	"image/color"
	"testing"

	"github.com/benoitkugler/minisvg/svgdoc"
)

func TestRenderBackground(t *testing.T) {
	doc := svgdoc.NewDocument(svgdoc.ViewBox{MinX: 0, MinY: 0, W: 40, H: 40})
	doc.SetBackground(svgdoc.Green)

	img := RenderToImage(doc)
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("unexpected image bounds %v", b)
	}
	// svg "green" is rgb(0,128,0)
	want := color.RGBA{R: 0, G: 0x80, B: 0, A: 0xff}
	if got := img.RGBAAt(20, 20); got != want {
		t.Errorf("background pixel: got %v, want %v", got, want)
	}
}

func TestRenderFill(t *testing.T) {
	doc := svgdoc.NewDocument(svgdoc.ViewBox{MinX: 0, MinY: 0, W: 40, H: 40})

	p := svgdoc.NewPath()
	p.SetFillColor(svgdoc.Red)
	p.MoveTo(5, 5)
	p.LineTo(35, 5)
	p.LineTo(35, 35)
	p.LineTo(5, 35)
	p.ClosePath()
	doc.AddPath(p)

	img := RenderToImage(doc)
	want := color.RGBA{R: 0xff, G: 0, B: 0, A: 0xff}
	if got := img.RGBAAt(20, 20); got != want {
		t.Errorf("filled pixel: got %v, want %v", got, want)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("pixel outside the path: got %v, want transparent", got)
	}
}

// a path that is both filled and stroked must render the fill at
// full coverage: the shared scanner only sees one rasterizer per pass
func TestRenderFillAndStroke(t *testing.T) {
	doc := svgdoc.NewDocument(svgdoc.ViewBox{MinX: 0, MinY: 0, W: 40, H: 40})

	p := svgdoc.NewPath()
	p.SetFillColor(svgdoc.Red)
	p.SetStrokeColor(svgdoc.Black)
	p.SetStrokeWidth(2)
	p.MoveTo(5, 5)
	p.LineTo(35, 5)
	p.LineTo(35, 35)
	p.LineTo(5, 35)
	p.ClosePath()
	doc.AddPath(p)

	img := RenderToImage(doc)
	red := color.RGBA{R: 0xff, G: 0, B: 0, A: 0xff}
	if got := img.RGBAAt(20, 20); got != red {
		t.Errorf("filled pixel: got %v, want %v", got, red)
	}
	black := color.RGBA{R: 0, G: 0, B: 0, A: 0xff}
	if got := img.RGBAAt(5, 20); got != black {
		t.Errorf("stroked pixel: got %v, want %v", got, black)
	}
}

func TestRenderStroke(t *testing.T) {
	doc := svgdoc.NewDocument(svgdoc.ViewBox{MinX: 0, MinY: 0, W: 40, H: 40})
	doc.SetBackground(svgdoc.White)

	p := svgdoc.NewPath()
	p.SetStrokeColor(svgdoc.Black)
	p.SetStrokeWidth(4)
	p.MoveTo(0, 20)
	p.LineTo(40, 20)
	doc.AddPath(p)

	img := RenderToImage(doc)
	want := color.RGBA{R: 0, G: 0, B: 0, A: 0xff}
	if got := img.RGBAAt(20, 20); got != want {
		t.Errorf("stroked pixel: got %v, want %v", got, want)
	}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if got := img.RGBAAt(20, 5); got != white {
		t.Errorf("pixel away from the stroke: got %v, want %v", got, white)
	}
}
