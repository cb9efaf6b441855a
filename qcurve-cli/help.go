package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "approx", "approximate":
		pterm.Info.Println("approx")
		pterm.Println(`
	approx x,y x,y x,y x,y

	Approximates the cubic Bézier curve with the given 4 control points
	(start, control 1, control 2, end) by a chain of quadratic segments.
	The search tries 1 … maxsegments quadratic segments and accepts the
	first chain whose sampled distance from the cubic stays within
	maxerror design units. When no count satisfies the tolerance, the
	chain for maxsegments is shown as a best effort.
	`)
	case "set", "settings":
		pterm.Info.Println("set")
		pterm.Println(`
	set maxsegments <n>    cap on quadratic segments per curve (default 10)
	set maxerror <e>       tolerance in design units (default 10)
	`)
	case "error":
		pterm.Info.Println("error")
		pterm.Println(`
	error

	Re-prints the sampled approximation error of the last approx run.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	approx x,y x,y x,y x,y   approximate a cubic by quadratics
	error                    show error of the last approximation
	set <name> <value>       change maxsegments / maxerror
	help [topic]             this help, or details per command
	quit                     leave (also <ctrl>D)
	`)
	}
}
