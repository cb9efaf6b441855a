/*
Package qcurve converts the cubic Bézier outlines of font glyphs into
quadratic approximations, as required when producing TrueType-flavoured
font formats from PostScript-flavoured sources.

The package walks an abstract font object model (fonts holding glyphs,
glyphs holding contours, contours holding typed segments) and replaces
every cubic "curve" segment in place by a single "qcurve" segment carrying the
chain of quadratic off-curve points computed by package
[github.com/npillmayer/qcurve/quad].

Font models are attached through three small interfaces ([Font],
[Glyph], [Contour]); package
[github.com/npillmayer/qcurve/memfont] contains a reference
implementation. Reading, parsing and serializing font files is the
business of the surrounding tooling, not of this package.

Conversion comes in two flavours:

  - [FontToQuadratic] converts a single font, choosing the smallest
    segment count per curve.
  - [FontsToQuadratic] with compatible=true converts a set of
    interpolation masters simultaneously, forcing corresponding curves
    to share a segment count so that the converted outlines keep
    identical point counts across masters.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package qcurve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'qcurve.outline'
func tracer() tracing.Trace {
	return tracing.Select("qcurve.outline")
}
