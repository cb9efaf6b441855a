package qcurve

import "fmt"

// GlyphError reports a structural problem encountered while converting
// a glyph, with enough context to locate the offending spot. Contour
// and Segment are -1 when the problem is not tied to a specific contour
// or segment.
type GlyphError struct {
	Glyph   string // glyph name
	Contour int    // contour index within the glyph, or -1
	Segment int    // segment index within the contour, or -1
	Issue   string // human-readable description
}

// Error implements the error interface.
func (e *GlyphError) Error() string {
	switch {
	case e.Contour < 0:
		return fmt.Sprintf("glyph %s: %s", e.Glyph, e.Issue)
	case e.Segment < 0:
		return fmt.Sprintf("glyph %s, contour %d: %s", e.Glyph, e.Contour, e.Issue)
	}
	return fmt.Sprintf("glyph %s, contour %d, segment %d: %s", e.Glyph, e.Contour, e.Segment, e.Issue)
}

// glyphError records the error in the trace before handing it to the
// caller.
func glyphError(glyph string, contour, segment int, format string, args ...any) *GlyphError {
	e := &GlyphError{
		Glyph:   glyph,
		Contour: contour,
		Segment: segment,
		Issue:   fmt.Sprintf(format, args...),
	}
	tracer().Errorf(e.Error())
	return e
}
