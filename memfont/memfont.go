/*
Package memfont is a mutable in-memory implementation of the outline
interfaces of package qcurve. It serves as the reference adapter for
attaching a concrete font object model to the converter, and as the
test vehicle of this module.

Glyphs may be built up segment by segment, or imported from the outline
segments that golang.org/x/image/font/sfnt produces when loading a
glyph ([GlyphFromSFNT]).

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package memfont

import (
	"github.com/npillmayer/qcurve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'qcurve.memfont'
func tracer() tracing.Trace {
	return tracing.Select("qcurve.memfont")
}

// Contour is a mutable in-memory contour.
type Contour struct {
	segs []qcurve.Segment
}

var _ qcurve.Contour = (*Contour)(nil)

// NewContour returns a contour holding the given segments.
func NewContour(segs ...qcurve.Segment) *Contour {
	return &Contour{segs: segs}
}

// Len returns the number of segments.
func (c *Contour) Len() int {
	return len(c.segs)
}

// Segment returns the i-th segment.
func (c *Contour) Segment(i int) qcurve.Segment {
	return c.segs[i]
}

// ReplaceSegments swaps the contour's entire segment list.
func (c *Contour) ReplaceSegments(segs []qcurve.Segment) {
	c.segs = segs
}

// Append adds a segment at the end of the contour.
func (c *Contour) Append(seg qcurve.Segment) {
	c.segs = append(c.segs, seg)
}

// Glyph is a named, mutable sequence of contours.
type Glyph struct {
	name     string
	contours []*Contour
}

var _ qcurve.Glyph = (*Glyph)(nil)

// NewGlyph returns a glyph holding the given contours.
func NewGlyph(name string, contours ...*Contour) *Glyph {
	return &Glyph{name: name, contours: contours}
}

// Name returns the glyph's name.
func (g *Glyph) Name() string {
	return g.name
}

// NumContours returns the number of contours.
func (g *Glyph) NumContours() int {
	return len(g.contours)
}

// Contour returns the i-th contour.
func (g *Glyph) Contour(i int) qcurve.Contour {
	return g.contours[i]
}

// Font is an ordered collection of glyphs.
type Font struct {
	glyphs []*Glyph
}

var _ qcurve.Font = (*Font)(nil)

// NewFont returns a font holding the given glyphs.
func NewFont(glyphs ...*Glyph) *Font {
	return &Font{glyphs: glyphs}
}

// NumGlyphs returns the number of glyphs.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}

// Glyph returns the i-th glyph.
func (f *Font) Glyph(i int) qcurve.Glyph {
	return f.glyphs[i]
}
