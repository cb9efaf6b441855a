package qcurve

import (
	"github.com/npillmayer/qcurve/quad"
)

// Segment type tags recognized by the converter. Segments carrying any
// other tag pass through conversion untouched.
const (
	SegTypeCurve  = "curve"  // cubic Bézier: two off-curve controls plus anchor
	SegTypeQCurve = "qcurve" // quadratic chain: off-curve controls plus anchor
)

// Segment is one entry of a contour's ordered segment list. Points
// holds the segment's points without the implicit start anchor, which
// is the last point of the preceding segment. A "curve" segment thus
// carries exactly [control1, control2, anchor].
type Segment struct {
	Type   string
	Points []quad.Point
	Smooth bool
}

// Contour is an ordered, indexable sequence of segments, usually
// closed: the anchor preceding segment 0 is the last point of the
// final segment.
//
// ReplaceSegments swaps the contour's entire ordered segment list in a
// single step. The converter calls it exactly once per contour, after
// the complete replacement list has been computed, so implementations
// never observe a half-converted contour.
type Contour interface {
	Len() int
	Segment(i int) Segment
	ReplaceSegments(segs []Segment)
}

// Glyph is an ordered sequence of contours, identified by name for
// diagnostics.
type Glyph interface {
	Name() string
	NumContours() int
	Contour(i int) Contour
}

// Font is an ordered collection of glyphs. When several fonts are
// converted as interpolation masters, glyph order has to correspond
// across all of them.
type Font interface {
	NumGlyphs() int
	Glyph(i int) Glyph
}
