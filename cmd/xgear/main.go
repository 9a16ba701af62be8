// Command xgear prints the outline of a gear with trapezoidal teeth.
//
// By default the outline is written as a closed polygon path command
// suitable for the d attribute of a path element. With -points, the
// vertices are written one per line instead.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"deedles.dev/xgear/gear"
	"deedles.dev/xgear/geom"
)

type options struct {
	params gear.Params
	points bool
	debug  bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	opts := options{params: gear.DefaultParams()}

	fset := flag.NewFlagSet("xgear", flag.ContinueOnError)
	fset.SetOutput(output)
	fset.Usage = func() {
		fmt.Fprintf(fset.Output(), "Usage: xgear [options]\n\n")
		fset.PrintDefaults()
	}

	fset.IntVar(&opts.params.Teeth, "n", opts.params.Teeth, "number of teeth")
	fset.Float64Var(&opts.params.ToothWidth, "w", opts.params.ToothWidth, "width per tooth")
	fset.Float64Var(&opts.params.ToothWidth, "width", opts.params.ToothWidth, "width per tooth")
	fset.Float64Var(&opts.params.HalfDepth, "d", opts.params.HalfDepth, "half-depth")
	fset.Float64Var(&opts.params.HalfDepth, "halfdepth", opts.params.HalfDepth, "half-depth")
	fset.Float64Var(&opts.params.SlopeWidth, "s", opts.params.SlopeWidth, "width of slope")
	fset.Float64Var(&opts.params.SlopeWidth, "slope", opts.params.SlopeWidth, "width of slope")
	fset.BoolVar(&opts.points, "points", false, "print vertices one per line instead of path data")
	fset.BoolVar(&opts.debug, "v", false, "log derived dimensions")

	err := fset.Parse(args)
	if err != nil {
		return opts, err
	}
	if fset.NArg() != 0 {
		return opts, fmt.Errorf("unexpected arguments: %q", fset.Args())
	}

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	points, err := gear.Outline(opts.params)
	if err != nil {
		return fmt.Errorf("generate outline: %w", err)
	}

	d := opts.params.Dims()
	logger.Debug("generated outline",
		"points", len(points),
		"middle_radius", d.MiddleRadius,
		"inner_radius", d.InnerRadius,
		"outer_radius", d.OuterRadius,
		"tooth_angle", d.ToothAngle,
		"slope_angle", d.SlopeAngle,
		"land_angle", d.LandAngle,
	)

	w := bufio.NewWriter(stdout)
	if opts.points {
		err = writePoints(w, points)
	} else {
		_, err = fmt.Fprintln(w, gear.PathData(points))
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return w.Flush()
}

func writePoints(w io.Writer, points []geom.Point[float64]) error {
	for _, p := range points {
		_, err := fmt.Fprintf(w, "%.3f %.3f\n", p.X, p.Y)
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "xgear: %v\n", err)
		os.Exit(1)
	}
}
