package qcurve

import (
	"fmt"

	"github.com/npillmayer/qcurve/quad"
)

// FontsToQuadratic converts the curves of several fonts. With
// compatible=false every font is converted independently, each curve
// with its own minimal segment count. With compatible=true the fonts
// are treated as interpolation masters: corresponding curves, matched
// by glyph, contour and segment index, are approximated with a shared
// segment count so the converted outlines keep identical point counts
// across masters.
//
// Compatible mode validates the structural correspondence it relies on
// (equal glyph counts, per-glyph contour counts, per-contour segment
// counts and type tags) and reports a mismatch before mutating anything
// of the affected glyph.
func FontsToQuadratic(fonts []Font, compatible bool, opts Options) error {
	opts = opts.fill()
	if !compatible {
		for _, f := range fonts {
			if err := FontToQuadratic(f, opts); err != nil {
				return err
			}
		}
		return nil
	}
	if len(fonts) == 0 {
		return fmt.Errorf("compatible conversion of empty font list")
	}
	nglyphs := fonts[0].NumGlyphs()
	for _, f := range fonts[1:] {
		if f.NumGlyphs() != nglyphs {
			return fmt.Errorf("master glyph counts differ: %d vs %d", nglyphs, f.NumGlyphs())
		}
	}
	group := make([]Glyph, len(fonts))
	for gi := 0; gi < nglyphs; gi++ {
		for k, f := range fonts {
			group[k] = f.Glyph(gi)
		}
		if err := GlyphsToQuadratic(group, opts); err != nil {
			return err
		}
	}
	return nil
}

// GlyphsToQuadratic converts corresponding glyphs of several
// interpolation masters, forcing every matched curve group onto the
// same segment count. Contours of all masters are mutated only after
// the whole contour group has been computed.
func GlyphsToQuadratic(glyphs []Glyph, opts Options) error {
	opts = opts.fill()
	if len(glyphs) == 0 {
		return fmt.Errorf("compatible conversion of empty glyph group")
	}
	name := glyphs[0].Name()
	tracer().Debugf("converting glyph %s across %d masters", name, len(glyphs))
	ncontours := glyphs[0].NumContours()
	for _, g := range glyphs[1:] {
		if g.NumContours() != ncontours {
			return glyphError(name, -1, -1,
				"master contour counts differ: %d vs %d", ncontours, g.NumContours())
		}
	}
	contours := make([]Contour, len(glyphs))
	for ci := 0; ci < ncontours; ci++ {
		for k, g := range glyphs {
			contours[k] = g.Contour(ci)
		}
		replacements, err := convertContourGroup(name, ci, contours, opts)
		if err != nil {
			return err
		}
		for k, contour := range contours {
			contour.ReplaceSegments(replacements[k])
		}
	}
	return nil
}

func convertContourGroup(glyph string, ci int, contours []Contour, opts Options) ([][]Segment, error) {
	n := contours[0].Len()
	for _, c := range contours[1:] {
		if c.Len() != n {
			return nil, glyphError(glyph, ci, -1,
				"master segment counts differ: %d vs %d", n, c.Len())
		}
	}
	out := make([][]Segment, len(contours))
	for k := range out {
		out[k] = make([]Segment, 0, n)
	}
	group := make([]quad.Cubic, len(contours))
	for si := 0; si < n; si++ {
		first := contours[0].Segment(si)
		for _, c := range contours[1:] {
			if s := c.Segment(si); s.Type != first.Type {
				return nil, glyphError(glyph, ci, si,
					"master segment types differ: %q vs %q", first.Type, s.Type)
			}
		}
		if first.Type != SegTypeCurve {
			for k, c := range contours {
				out[k] = append(out[k], c.Segment(si))
			}
			continue
		}
		for k, c := range contours {
			cub, err := cubicAt(glyph, ci, c, si)
			if err != nil {
				return nil, err
			}
			group[k] = cub
		}
		splines, ok := quad.ApproximateBatch(group, opts.MaxSegments, opts.MaxError)
		if !ok {
			return nil, glyphError(glyph, ci, si,
				"degenerate curve group cannot be approximated within %d segment(s)", opts.MaxSegments)
		}
		for k, c := range contours {
			out[k] = append(out[k], quadSegment(splines[k], c.Segment(si).Smooth))
		}
	}
	return out, nil
}
