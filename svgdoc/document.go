// Provides a minimal builder for SVG documents:
// paths are accumulated from basic drawing commands,
// then serialized to markup, or handed to a painting
// driver. See minisvg/svgraster and minisvg/svgpdf.
package svgdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// namespace written on the <svg> element when not overridden
const defaultXMLNS = "http://www.w3.org/2000/svg"

// ViewBox is the coordinate rectangle defining the visible
// drawing area.
type ViewBox struct {
	MinX, MinY, W, H int
}

func (v ViewBox) attr() string {
	return strconv.Itoa(v.MinX) + " " + strconv.Itoa(v.MinY) + " " +
		strconv.Itoa(v.W) + " " + strconv.Itoa(v.H)
}

// Document is a minimal SVG document: a view box, an optional
// background color and an ordered list of paths. Paths render in
// insertion order, so later paths paint over earlier ones.
type Document struct {
	viewBox    ViewBox
	xmlns      string // empty means defaultXMLNS
	background Color
	paths      []Path
}

// NewDocument returns an empty document with the given view box,
// which is fixed for the lifetime of the document.
func NewDocument(viewBox ViewBox) *Document {
	return &Document{viewBox: viewBox}
}

// ViewBox returns the view box given at construction.
func (doc *Document) ViewBox() ViewBox { return doc.viewBox }

// SetXMLNS overrides the namespace written on the <svg> element.
func (doc *Document) SetXMLNS(xmlns string) { doc.xmlns = xmlns }

// SetBackground sets the background color. If unset, no background
// rectangle is emitted.
func (doc *Document) SetBackground(c Color) { doc.background = c }

// Background returns the background color, or nil if unset.
func (doc *Document) Background() Color { return doc.background }

// AddPath appends the path to the document, which takes ownership
// of it: the path should not be used by the caller afterwards.
func (doc *Document) AddPath(p Path) { doc.paths = append(doc.paths, p) }

// Render returns the markup of the document. It is a pure function
// of the accumulated state: rendering twice yields the same string.
func (doc *Document) Render() string {
	var b strings.Builder

	xmlns := doc.xmlns
	if xmlns == "" {
		xmlns = defaultXMLNS
	}
	fmt.Fprintf(&b, "<svg viewBox=\"%s\" xmlns=\"%s\">\n", doc.viewBox.attr(), xmlns)

	if doc.background != nil {
		fmt.Fprintf(&b, "  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", doc.background.token())
	}

	for _, p := range doc.paths {
		fmt.Fprintf(&b, "  <path d=\"%s\" stroke=\"%s\" fill=\"%s\" stroke-width=\"%s\"/>\n",
			p.PathData(), colorToken(p.stroke), colorToken(p.fill), formatFloat(p.width))
	}

	b.WriteString("</svg>")
	return b.String()
}
