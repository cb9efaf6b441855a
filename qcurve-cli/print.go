package main

import (
	"fmt"

	"github.com/npillmayer/qcurve/quad"
	"github.com/pterm/pterm"
)

// printSpline renders the chain as a table, classifying each point as
// on-curve or off-curve.
func printSpline(s quad.Spline) {
	pterm.Printf("chain of %d quadratic segment(s), %d points\n", s.Segments(), len(s))
	data := [][]string{
		{"Index", "X", "Y", "Kind"},
	}
	for i, p := range s {
		kind := "on-curve"
		if i%2 == 1 {
			kind = "off-curve"
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%g", p.X),
			fmt.Sprintf("%g", p.Y),
			kind,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printError(c quad.Cubic, s quad.Spline, tolerance float64) {
	e := quad.ApproximationError(c, s)
	if e <= tolerance {
		pterm.Printf("approximation error %.4f (tolerance %g)\n", e, tolerance)
		return
	}
	pterm.Error.Printf("approximation error %.4f exceeds tolerance %g\n", e, tolerance)
}
