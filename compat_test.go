package qcurve_test

import (
	"testing"

	"github.com/npillmayer/qcurve"
	"github.com/npillmayer/qcurve/memfont"
	"github.com/npillmayer/qcurve/quad"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// masterGlyph builds a glyph with a single contour: a move, one cubic
// curve with the given control points, and a closing line.
func masterGlyph(name string, c1, c2 quad.Point) *memfont.Glyph {
	return memfont.NewGlyph(name, memfont.NewContour(
		qcurve.Segment{Type: memfont.SegTypeMove, Points: []quad.Point{quad.Pt(0, 0)}},
		qcurve.Segment{
			Type:   qcurve.SegTypeCurve,
			Points: []quad.Point{c1, c2, quad.Pt(30, 0)},
		},
		qcurve.Segment{Type: memfont.SegTypeLine, Points: []quad.Point{quad.Pt(0, 0)}},
	))
}

// Scenario: two masters, one flat and one deep. Compatible conversion
// must give corresponding segments identical point counts, driven by
// the worst-case master.
func TestCompatibleMasters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qcurve.outline")
	defer teardown()
	//
	flat := memfont.NewFont(masterGlyph("a", quad.Pt(10, 1), quad.Pt(20, 1)))
	deep := memfont.NewFont(masterGlyph("a", quad.Pt(3, 40), quad.Pt(27, 40)))
	err := qcurve.FontsToQuadratic([]qcurve.Font{flat, deep}, true, qcurve.Options{})
	require.NoError(t, err)
	//
	flatSeg := flat.Glyph(0).Contour(0).Segment(1)
	deepSeg := deep.Glyph(0).Contour(0).Segment(1)
	assert.Equal(t, qcurve.SegTypeQCurve, flatSeg.Type)
	assert.Equal(t, qcurve.SegTypeQCurve, deepSeg.Type)
	assert.Equal(t, len(flatSeg.Points), len(deepSeg.Points),
		"masters must end up with identical point counts")
	assert.Greater(t, len(deepSeg.Points), 2,
		"the deep master must force more than one quadratic segment")
}

// Without compatibility, each master converts with its own minimal
// segment count; the flat master needs only one quadratic.
func TestIndependentMasters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qcurve.outline")
	defer teardown()
	//
	flat := memfont.NewFont(masterGlyph("a", quad.Pt(10, 1), quad.Pt(20, 1)))
	deep := memfont.NewFont(masterGlyph("a", quad.Pt(3, 40), quad.Pt(27, 40)))
	err := qcurve.FontsToQuadratic([]qcurve.Font{flat, deep}, false, qcurve.Options{})
	require.NoError(t, err)
	//
	flatSeg := flat.Glyph(0).Contour(0).Segment(1)
	deepSeg := deep.Glyph(0).Contour(0).Segment(1)
	assert.Equal(t, 2, len(flatSeg.Points))
	assert.Greater(t, len(deepSeg.Points), len(flatSeg.Points))
}

func TestCompatibleSegmentCountMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qcurve.outline")
	defer teardown()
	//
	a := memfont.NewFont(masterGlyph("x", quad.Pt(10, 1), quad.Pt(20, 1)))
	short := memfont.NewGlyph("x", memfont.NewContour(
		qcurve.Segment{Type: memfont.SegTypeMove, Points: []quad.Point{quad.Pt(0, 0)}},
		qcurve.Segment{
			Type:   qcurve.SegTypeCurve,
			Points: []quad.Point{quad.Pt(10, 1), quad.Pt(20, 1), quad.Pt(30, 0)},
		},
	))
	b := memfont.NewFont(short)
	//
	err := qcurve.FontsToQuadratic([]qcurve.Font{a, b}, true, qcurve.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x", "error must name the glyph")
	assert.Equal(t, qcurve.SegTypeCurve, a.Glyph(0).Contour(0).Segment(1).Type,
		"no master may be mutated on a structural mismatch")
	assert.Equal(t, qcurve.SegTypeCurve, b.Glyph(0).Contour(0).Segment(1).Type)
}

func TestCompatibleTypeMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qcurve.outline")
	defer teardown()
	//
	a := memfont.NewFont(masterGlyph("y", quad.Pt(10, 1), quad.Pt(20, 1)))
	swapped := memfont.NewGlyph("y", memfont.NewContour(
		qcurve.Segment{Type: memfont.SegTypeMove, Points: []quad.Point{quad.Pt(0, 0)}},
		qcurve.Segment{Type: memfont.SegTypeLine, Points: []quad.Point{quad.Pt(30, 0)}},
		qcurve.Segment{Type: memfont.SegTypeLine, Points: []quad.Point{quad.Pt(0, 0)}},
	))
	b := memfont.NewFont(swapped)
	//
	err := qcurve.FontsToQuadratic([]qcurve.Font{a, b}, true, qcurve.Options{})
	require.Error(t, err)
	var gerr *qcurve.GlyphError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "y", gerr.Glyph)
	assert.Equal(t, 1, gerr.Segment)
}

func TestCompatibleGlyphCountMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qcurve.outline")
	defer teardown()
	//
	a := memfont.NewFont(
		masterGlyph("a", quad.Pt(10, 1), quad.Pt(20, 1)),
		masterGlyph("b", quad.Pt(10, 1), quad.Pt(20, 1)),
	)
	b := memfont.NewFont(masterGlyph("a", quad.Pt(10, 1), quad.Pt(20, 1)))
	err := qcurve.FontsToQuadratic([]qcurve.Font{a, b}, true, qcurve.Options{})
	assert.Error(t, err)
}

func TestCompatibleEmptyFontList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "qcurve.outline")
	defer teardown()
	//
	err := qcurve.FontsToQuadratic(nil, true, qcurve.Options{})
	assert.Error(t, err)
}
