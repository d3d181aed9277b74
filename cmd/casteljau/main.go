// Command casteljau prints the De Casteljau construction of a Bézier curve.
//
// The curve is either given explicitly with repeated --point flags or
// generated from a seed:
//
//	casteljau pyramid --point 0,0 --point 0,10 --point 10,10 --t 0.5
//	casteljau eval --degree 5 --seed 42 --bounds 0,0,640,480 --t 0.3
//	casteljau --config params.yaml flatten --degree 3 --seed 1
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"honnef.co/go/bezier"

	"github.com/urfave/cli/v2"
)

type appState struct {
	params bezier.Params
}

func curveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "degree",
			Aliases: []string{"d"},
			Value:   3,
			Usage:   "Degree of the generated curve (ignored with --point)",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "Seed for generating control points",
		},
		&cli.StringFlag{
			Name:  "bounds",
			Value: "0,0,100,100",
			Usage: "Rectangle `x0,y0,x1,y1` that generated control points lie in",
		},
		&cli.StringSliceFlag{
			Name:    "point",
			Aliases: []string{"p"},
			Usage:   "Control point `x,y`, may be repeated; overrides --degree and --seed",
		},
		&cli.Float64Flag{
			Name:  "t",
			Usage: "Curve parameter (defaults to the configured value)",
		},
	}
}

func newApp() *cli.App {
	st := &appState{params: bezier.DefaultParams()}

	app := &cli.App{
		Name:                      "casteljau",
		Usage:                     "Show De Casteljau's construction of Bézier curves",
		Writer:                    os.Stdout,
		ErrWriter:                 os.Stderr,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load t and flatness from a YAML `file`",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug output to stderr",
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("verbose") {
				bezier.SetLogger(slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			if path := ctx.String("config"); path != "" {
				p, err := loadConfig(path)
				if err != nil {
					return err
				}
				st.params = p
			}
			return nil
		},
		After: func(ctx *cli.Context) error {
			bezier.SetLogger(nil)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "pyramid",
			Usage:  "Print every level of the construction at t",
			Flags:  curveFlags(),
			Action: st.runPyramid,
		},
		{
			Name:   "eval",
			Usage:  "Print the point on the curve at t",
			Flags:  curveFlags(),
			Action: st.runEval,
		},
		{
			Name:  "flatten",
			Usage: "Print a polyline approximating the curve",
			Flags: append(curveFlags(), &cli.Float64Flag{
				Name:  "flatness",
				Usage: "Maximum distance between curve and polyline (defaults to the configured value)",
			}),
			Action: st.runFlatten,
		},
	}
	return app
}

func loadConfig(path string) (bezier.Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return bezier.Params{}, err
	}
	defer f.Close()
	p, err := bezier.LoadParams(f)
	if err != nil {
		return bezier.Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// resolveParams applies command line overrides to the configured parameters.
func (st *appState) resolveParams(ctx *cli.Context) (bezier.Params, error) {
	p := st.params
	if ctx.IsSet("t") {
		p = p.WithT(ctx.Float64("t"))
	}
	if ctx.IsSet("flatness") {
		p = p.WithFlatness(ctx.Float64("flatness"))
	}
	if err := p.Validate(); err != nil {
		return bezier.Params{}, err
	}
	return p, nil
}

func buildCurve(ctx *cli.Context) (*bezier.Curve, error) {
	if specs := ctx.StringSlice("point"); len(specs) > 0 {
		pts := make([]bezier.Point, len(specs))
		for i, spec := range specs {
			vals, err := parseFloats(spec, 2)
			if err != nil {
				return nil, fmt.Errorf("--point %q: %w", spec, err)
			}
			pts[i] = bezier.Pt(vals[0], vals[1])
		}
		return bezier.NewFromPoints(pts...)
	}

	vals, err := parseFloats(ctx.String("bounds"), 4)
	if err != nil {
		return nil, fmt.Errorf("--bounds %q: %w", ctx.String("bounds"), err)
	}
	c, err := bezier.New(ctx.Int("degree"))
	if err != nil {
		return nil, err
	}
	bounds := bezier.Rect{X0: vals[0], Y0: vals[1], X1: vals[2], Y1: vals[3]}
	if err := c.Randomize(bounds, rand.New(rand.NewPCG(ctx.Uint64("seed"), 0))); err != nil {
		return nil, err
	}
	return c, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func writePoints(w io.Writer, pts []bezier.Point) {
	for i, p := range pts {
		if i > 0 {
			_, _ = io.WriteString(w, " ")
		}
		_, _ = io.WriteString(w, p.String())
	}
	_, _ = io.WriteString(w, "\n")
}

func (st *appState) runPyramid(ctx *cli.Context) error {
	p, err := st.resolveParams(ctx)
	if err != nil {
		return err
	}
	c, err := buildCurve(ctx)
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	for degree := c.Degree(); degree >= 0; degree-- {
		pts, err := c.ControlPointsForDegree(degree, p.T)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "degree %d: ", degree)
		writePoints(w, pts)
	}
	return nil
}

func (st *appState) runEval(ctx *cli.Context) error {
	p, err := st.resolveParams(ctx)
	if err != nil {
		return err
	}
	c, err := buildCurve(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(ctx.App.Writer, c.Eval(p.T))
	return nil
}

func (st *appState) runFlatten(ctx *cli.Context) error {
	p, err := st.resolveParams(ctx)
	if err != nil {
		return err
	}
	c, err := buildCurve(ctx)
	if err != nil {
		return err
	}
	poly, err := c.Flatten(p.Flatness)
	if err != nil {
		return err
	}
	for _, pt := range poly {
		_, _ = fmt.Fprintln(ctx.App.Writer, pt)
	}
	return nil
}

func run(app *cli.App, args []string) error {
	err := app.Run(args)
	if err != nil {
		_, _ = fmt.Fprintf(app.ErrWriter, "Command error: %v\n", err)
	}
	return err
}

func main() {
	if err := run(newApp(), os.Args); err != nil {
		os.Exit(1)
	}
}
