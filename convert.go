package qcurve

import (
	"github.com/npillmayer/qcurve/quad"
)

// Options configures a conversion pass. The zero value selects the
// package defaults of 10 segments per curve and 10 design units of
// tolerance.
type Options struct {
	MaxSegments int     // maximum quadratic segments per converted curve
	MaxError    float64 // approximation tolerance in design units
}

// DefaultOptions returns the package defaults spelled out.
func DefaultOptions() Options {
	return Options{
		MaxSegments: quad.DefaultMaxSegments,
		MaxError:    quad.DefaultMaxError,
	}
}

func (o Options) fill() Options {
	if o.MaxSegments <= 0 {
		o.MaxSegments = quad.DefaultMaxSegments
	}
	if o.MaxError <= 0 {
		o.MaxError = quad.DefaultMaxError
	}
	return o
}

// FontToQuadratic converts every cubic curve segment of every glyph of
// a font, in place. Conversion stops at the first failing glyph;
// callers wanting partial-success semantics convert glyph by glyph
// with [GlyphToQuadratic].
func FontToQuadratic(f Font, opts Options) error {
	opts = opts.fill()
	for gi := 0; gi < f.NumGlyphs(); gi++ {
		if err := GlyphToQuadratic(f.Glyph(gi), opts); err != nil {
			return err
		}
	}
	return nil
}

// GlyphToQuadratic converts every cubic "curve" segment of a glyph
// into a single "qcurve" segment, in place. Each contour is mutated
// only after its complete replacement list has been computed, so a
// failing contour is left untouched.
func GlyphToQuadratic(g Glyph, opts Options) error {
	opts = opts.fill()
	tracer().Debugf("converting glyph %s", g.Name())
	for ci := 0; ci < g.NumContours(); ci++ {
		contour := g.Contour(ci)
		segs, err := convertContour(g.Name(), ci, contour, opts)
		if err != nil {
			return err
		}
		contour.ReplaceSegments(segs)
	}
	return nil
}

func convertContour(glyph string, ci int, contour Contour, opts Options) ([]Segment, error) {
	segs := make([]Segment, 0, contour.Len())
	for si := 0; si < contour.Len(); si++ {
		seg := contour.Segment(si)
		if seg.Type != SegTypeCurve {
			segs = append(segs, seg)
			continue
		}
		c, err := cubicAt(glyph, ci, contour, si)
		if err != nil {
			return nil, err
		}
		spline, ok := quad.Approximate(c, opts.MaxSegments, opts.MaxError)
		if !ok {
			return nil, glyphError(glyph, ci, si,
				"degenerate curve cannot be approximated within %d segment(s)", opts.MaxSegments)
		}
		segs = append(segs, quadSegment(spline, seg.Smooth))
	}
	return segs, nil
}

// cubicAt assembles the cubic curve of segment si. The start anchor is
// the last point of the preceding segment, wrapping around to the final
// segment for the first segment of a closed contour.
func cubicAt(glyph string, ci int, contour Contour, si int) (quad.Cubic, error) {
	seg := contour.Segment(si)
	if len(seg.Points) != 3 {
		return quad.Cubic{}, glyphError(glyph, ci, si,
			"curve segment carries %d point(s), want 3", len(seg.Points))
	}
	prev := contour.Segment((si - 1 + contour.Len()) % contour.Len())
	if len(prev.Points) == 0 {
		return quad.Cubic{}, glyphError(glyph, ci, si,
			"preceding segment carries no anchor point")
	}
	return quad.Cubic{
		P0: prev.Points[len(prev.Points)-1],
		P1: seg.Points[0],
		P2: seg.Points[1],
		P3: seg.Points[2],
	}, nil
}

// quadSegment builds the replacement segment from an approximation
// chain. The chain's start anchor is dropped (it stays with the
// preceding segment) and coordinates are truncated to integers.
func quadSegment(s quad.Spline, smooth bool) Segment {
	pts := make([]quad.Point, 0, len(s)-1)
	for _, p := range s[1:] {
		pts = append(pts, p.Trunc())
	}
	return Segment{Type: SegTypeQCurve, Points: pts, Smooth: smooth}
}
