/*
Package quad approximates cubic Bézier curves by chains of quadratic
Bézier segments, the curve representation required by TrueType-flavoured
font outlines.

The central operation is [Approximate]: given a cubic curve and an error
tolerance in design units, it searches for the smallest number of
quadratic segments that stays within tolerance while preserving the
cubic's endpoint tangents. [ApproximateBatch] performs the same search
for a group of interpolation-compatible curves from several font
masters, forcing a shared segment count so that the converted outlines
keep identical point counts across masters.

A chain of quadratics is represented as a [Spline]: a flat point list of
length 2n+1 for n segments, alternating on-curve and off-curve points.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package quad

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'qcurve.bezier'
func tracer() tracing.Trace {
	return tracing.Select("qcurve.bezier")
}
