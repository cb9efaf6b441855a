package qcurve

import "testing"

// TestGlyphError verifies GlyphError formatting with and without
// location context.
func TestGlyphError(t *testing.T) {
	tests := []struct {
		name     string
		err      GlyphError
		expected string
	}{
		{
			name:     "full context",
			err:      GlyphError{Glyph: "Aacute", Contour: 1, Segment: 3, Issue: "curve segment carries 2 point(s), want 3"},
			expected: "glyph Aacute, contour 1, segment 3: curve segment carries 2 point(s), want 3",
		},
		{
			name:     "contour only",
			err:      GlyphError{Glyph: "O", Contour: 0, Segment: -1, Issue: "master segment counts differ: 4 vs 5"},
			expected: "glyph O, contour 0: master segment counts differ: 4 vs 5",
		},
		{
			name:     "glyph only",
			err:      GlyphError{Glyph: "O", Contour: -1, Segment: -1, Issue: "master contour counts differ: 1 vs 2"},
			expected: "glyph O: master contour counts differ: 1 vs 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("GlyphError.Error() = %q; want %q", result, tt.expected)
			}
		})
	}
}
