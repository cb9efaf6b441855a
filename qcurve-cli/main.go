package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/qcurve/quad"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'qcurve.cli'
func tracer() tracing.Trace {
	return tracing.Select("qcurve.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.qcurve.cli":     "Info",
		"trace.qcurve.bezier":  "Info",
		"trace.qcurve.outline": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	maxseg := flag.Int("maxsegments", quad.DefaultMaxSegments, "Maximum quadratic segments per curve")
	maxerr := flag.Float64("maxerror", quad.DefaultMaxError, "Approximation tolerance in design units")
	flag.Parse()
	pterm.Info.Println("Welcome to the quadratic curve lab")
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("quad > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:        repl,
		maxSegments: *maxseg,
		maxError:    *maxerr,
	}
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl        *readline.Instance
	maxSegments int
	maxError    float64
	cubic       quad.Cubic  // last curve entered
	spline      quad.Spline // last approximation result
	haveCubic   bool
}

func (intp *Intp) String() string {
	s := fmt.Sprintf("( maxsegments=%d maxerror=%g )", intp.maxSegments, intp.maxError)
	if intp.haveCubic {
		s += fmt.Sprintf(" %v %v %v %v", intp.cubic.P0, intp.cubic.P1, intp.cubic.P2, intp.cubic.P3)
	}
	return s
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err, quit := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

var commandFn = map[string]func(*Intp, []string) (error, bool){
	"quit":   quitOp,
	"help":   helpOp,
	"set":    setOp,
	"approx": approxOp,
	"error":  errorOp,
}

func (intp *Intp) execute(line string) (err error, stop bool) {
	args := strings.Fields(line)
	tracer().Debugf("cmd = %v", args)
	f, ok := commandFn[strings.ToLower(args[0])]
	if !ok {
		pterm.Error.Printf("unknown command: %s\n", args[0])
		help("")
		return nil, false
	}
	return f(intp, args[1:])
}

func quitOp(intp *Intp, args []string) (error, bool) {
	return nil, true
}

func helpOp(intp *Intp, args []string) (error, bool) {
	topic := ""
	if len(args) > 0 {
		topic = args[0]
	}
	help(topic)
	return nil, false
}

func setOp(intp *Intp, args []string) (error, bool) {
	if len(args) != 2 {
		return fmt.Errorf("usage: set maxsegments|maxerror <value>"), false
	}
	switch strings.ToLower(args[0]) {
	case "maxsegments":
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("maxsegments needs a positive integer, got %q", args[1]), false
		}
		intp.maxSegments = n
	case "maxerror":
		e, err := strconv.ParseFloat(args[1], 64)
		if err != nil || e <= 0 {
			return fmt.Errorf("maxerror needs a positive number, got %q", args[1]), false
		}
		intp.maxError = e
	default:
		return fmt.Errorf("unknown setting: %s", args[0]), false
	}
	return nil, false
}

// approxOp reads 4 control points "x,y" and prints the quadratic chain.
func approxOp(intp *Intp, args []string) (error, bool) {
	if len(args) != 4 {
		return fmt.Errorf("usage: approx x,y x,y x,y x,y"), false
	}
	pts := make([]quad.Point, 4)
	for i, a := range args {
		p, err := parsePoint(a)
		if err != nil {
			return err, false
		}
		pts[i] = p
	}
	intp.cubic = quad.Cubic{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}
	intp.haveCubic = true
	spline, ok := quad.Approximate(intp.cubic, intp.maxSegments, intp.maxError)
	if !ok {
		return fmt.Errorf("no quadratic chain exists within %d segment(s)", intp.maxSegments), false
	}
	intp.spline = spline
	printSpline(spline)
	printError(intp.cubic, spline, intp.maxError)
	return nil, false
}

func errorOp(intp *Intp, args []string) (error, bool) {
	if intp.spline == nil {
		return fmt.Errorf("no approximation yet, use approx first"), false
	}
	printError(intp.cubic, intp.spline, intp.maxError)
	return nil, false
}

func parsePoint(s string) (quad.Point, error) {
	xy := strings.Split(s, ",")
	if len(xy) != 2 {
		return quad.Point{}, fmt.Errorf("point syntax is x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(xy[0], 64)
	if err != nil {
		return quad.Point{}, fmt.Errorf("invalid coordinate %q", xy[0])
	}
	y, err := strconv.ParseFloat(xy[1], 64)
	if err != nil {
		return quad.Point{}, fmt.Errorf("invalid coordinate %q", xy[1])
	}
	return quad.Pt(x, y), nil
}
