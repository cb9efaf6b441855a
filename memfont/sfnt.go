package memfont

import (
	"fmt"

	"github.com/npillmayer/qcurve"
	"github.com/npillmayer/qcurve/quad"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Segment type tags produced for sfnt outline ops that the converter
// passes through untouched.
const (
	SegTypeMove = "move"
	SegTypeLine = "line"
)

// GlyphFromSFNT builds a glyph from the outline segments returned by
// (*sfnt.Font).LoadGlyph. CFF-flavoured fonts yield cubic ops, which
// become "curve" segments the converter will replace; TrueType-
// flavoured fonts yield quadratic ops, which pass through as "qcurve".
// Every MoveTo op opens a new contour.
func GlyphFromSFNT(name string, segs sfnt.Segments) (*Glyph, error) {
	g := &Glyph{name: name}
	var contour *Contour
	for i, s := range segs {
		if s.Op != sfnt.SegmentOpMoveTo && contour == nil {
			return nil, fmt.Errorf("glyph %s: segment %d precedes the first MoveTo", name, i)
		}
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			contour = NewContour(qcurve.Segment{
				Type:   SegTypeMove,
				Points: []quad.Point{designPt(s.Args[0])},
			})
			g.contours = append(g.contours, contour)
		case sfnt.SegmentOpLineTo:
			contour.Append(qcurve.Segment{
				Type:   SegTypeLine,
				Points: []quad.Point{designPt(s.Args[0])},
			})
		case sfnt.SegmentOpQuadTo:
			contour.Append(qcurve.Segment{
				Type:   qcurve.SegTypeQCurve,
				Points: []quad.Point{designPt(s.Args[0]), designPt(s.Args[1])},
			})
		case sfnt.SegmentOpCubeTo:
			contour.Append(qcurve.Segment{
				Type: qcurve.SegTypeCurve,
				Points: []quad.Point{
					designPt(s.Args[0]), designPt(s.Args[1]), designPt(s.Args[2]),
				},
			})
		default:
			return nil, fmt.Errorf("glyph %s: segment %d has unknown op %d", name, i, s.Op)
		}
	}
	tracer().Debugf("imported glyph %s with %d contour(s)", name, len(g.contours))
	return g, nil
}

// designPt converts a 26.6 fixed-point coordinate to design units.
func designPt(p fixed.Point26_6) quad.Point {
	return quad.Pt(float64(p.X)/64, float64(p.Y)/64)
}
