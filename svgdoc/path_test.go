package svgdoc

import (
	"fmt"
	"testing"
)

func TestPathData(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 100)
	p.Bezier(100, 80, 20, 0, 0, 0)

	want := "M 0 0 L 100 100 C 100 80 20 0 0 0"
	if got := p.PathData(); got != want {
		t.Errorf("path data: got %q, want %q", got, want)
	}
}

func TestPathDataClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(90, 10)
	p.LineTo(50, 80)
	p.ClosePath()

	want := "M 10 10 L 90 10 L 50 80 Z"
	if got := p.PathData(); got != want {
		t.Errorf("path data: got %q, want %q", got, want)
	}
}

func TestPathDataDecimals(t *testing.T) {
	p := NewPath()
	p.MoveTo(0.5, 1.25)
	p.LineTo(-3, 40)

	want := "M 0.5 1.25 L -3 40"
	if got := p.PathData(); got != want {
		t.Errorf("path data: got %q, want %q", got, want)
	}
}

func TestUndo(t *testing.T) {
	p := NewPath()
	p.Undo() // no-op on an empty path
	p.MoveTo(0, 0)
	p.LineTo(30, 40)
	p.Undo()

	if got := p.PathData(); got != "M 0 0" {
		t.Errorf("path data after undo: got %q, want %q", got, "M 0 0")
	}
}

func TestRawRule(t *testing.T) {
	p := NewPath()
	p.RawRule("M 0 0 L 100 100")
	p.LineTo(50, 50)

	want := "M 0 0 L 100 100 L 50 50"
	if got := p.PathData(); got != want {
		t.Errorf("path data: got %q, want %q", got, want)
	}
}

// a Path prints as its path data
func TestPathStringer(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 100)
	p.ClosePath()

	want := "M 0 0 L 100 100 Z"
	if got := fmt.Sprint(p); got != want {
		t.Errorf("path string: got %q, want %q", got, want)
	}
}

func TestEmptyPath(t *testing.T) {
	p := NewPath()
	if got := p.PathData(); got != "" {
		t.Errorf("empty path data: got %q", got)
	}
}

// no validation connects commands: a curve before any move
// still renders, command by command
func TestUnorderedCommands(t *testing.T) {
	p := NewPath()
	p.Bezier(1, 2, 3, 4, 5, 6)
	p.ClosePath()

	want := "C 1 2 3 4 5 6 Z"
	if got := p.PathData(); got != want {
		t.Errorf("path data: got %q, want %q", got, want)
	}
}
