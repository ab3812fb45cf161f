package main

import (
	"flag"
	"fmt"
	"os"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	pkg "github.com/gucio321/bezierdraw/pkg"
	"github.com/gucio321/bezierdraw/pkg/bezier"
	"github.com/gucio321/bezierdraw/pkg/chart"
	"github.com/gucio321/bezierdraw/pkg/gcb"
	"github.com/gucio321/bezierdraw/pkg/preset"
	"github.com/gucio321/bezierdraw/pkg/viewer"
	"github.com/gucio321/bezierdraw/pkg/workspace"
)

type Flags struct {
	InputFilePath  string
	Inkscape       bool
	Points         string
	Workspace      string
	Samples        int
	Scale          float64
	OutputFilePath string
	GCodeFilePath  string
	CommentsAbove  bool
	NoLineComments bool
	RepeatN        int
	RepeatDepth    float64
	DepthDelta     float64
	View           bool
	startZ         float64
	force          bool
	preset         string
	makePreset     bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", "", "input SVG file path (its path vertices make the control polygon)")
	flag.BoolVar(&f.Inkscape, "inkscape", false, "pre-process input file with inkscape (object-to-path)")
	flag.StringVar(&f.Points, "points", "", "control polygon as \"x,y x,y ...\"")
	flag.StringVar(&f.Workspace, "workspace", workspace.DefaultName, "workspace (display bounds) name")
	flag.IntVar(&f.Samples, "n", bezier.DefaultSamples, "number of curve samples")
	flag.Float64Var(&f.Scale, "s", 1.0, "Scale factor of the SVG input")
	flag.StringVar(&f.OutputFilePath, "o", "", "output chart file path (png, svg, pdf)")
	flag.StringVar(&f.GCodeFilePath, "gcode", "", "output GCode file path")
	flag.BoolVar(&f.NoLineComments, "nlc", false, "no line comments in GCode")
	flag.BoolVar(&f.CommentsAbove, "ca", false, "GCode comments above")
	flag.IntVar(&f.RepeatN, "rn", 0, "repeat GCode N times (use with -rd)")
	flag.Float64Var(&f.RepeatDepth, "rd", 5, "repeat depth (use with -rn)")
	flag.Float64Var(&f.startZ, "sz", 0, "start Z (use along with -dz for delta zet)")
	flag.Float64Var(&f.DepthDelta, "dz", gcb.BaseDepth, "delta Z (use along with -sz for start zet)")
	flag.BoolVar(&f.force, "f", false, "force")
	flag.BoolVar(&f.View, "v", false, "view the curve (always on when no input is given)")
	flag.StringVar(&f.preset, "preset", "", "JSON or YAML preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.makePreset {
		format := preset.JSON
		if f.preset != "" {
			var err error
			if format, err = preset.FormatOf(f.preset); err != nil {
				glg.Fatalf("Unable to generate preset: %v", err)
			}
		}

		out, err := preset.Marshal(format, f)
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Presets generated")

		return
	}

	if f.preset != "" {
		if err := preset.Load(f.preset, &f); err != nil {
			glg.Fatalf("Unable to load preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}
	}

	if f.startZ != 0 && f.DepthDelta == gcb.BaseDepth && !f.force {
		glg.Fatal("Please specify -dz (-f to force)")
	}

	area, err := workspace.Get(f.Workspace)
	if err != nil {
		glg.Fatalf("Cannot use workspace: %v", err)
	}

	var poly bezier.Polygon

	switch {
	case f.InputFilePath != "":
		poly = readSVG(&f)
	case f.Points != "":
		if poly, err = pkg.ParsePoints(f.Points); err != nil {
			glg.Fatalf("Cannot parse points: %v", err)
		}
	default:
		// no input - acquire points in the window
		v := viewer.NewViewer(area, f.Samples).OnDone(func(poly bezier.Polygon, curve []bezier.Point) {
			if err := output(&f, area, poly, curve, false); err != nil {
				glg.Errorf("Cannot write output: %v", err)
			}
		})

		run(v)

		return
	}

	curve, err := bezier.Sample(poly, f.Samples)
	if err != nil {
		glg.Fatalf("Cannot compute curve: %v", err)
	}

	if err := output(&f, area, poly, curve, !f.View); err != nil {
		glg.Fatalf("Cannot write output: %v", err)
	}

	if f.View {
		v := viewer.NewViewer(area, f.Samples)
		if err := v.Preload(poly); err != nil {
			glg.Fatalf("Cannot display polygon: %v", err)
		}

		run(v)
	}
}

func run(v *viewer.Viewer) {
	ebiten.SetWindowSize(viewer.DefaultWidth, viewer.DefaultHeight)
	ebiten.SetWindowTitle(chart.DefaultTitle)

	if err := ebiten.RunGame(v); err != nil {
		glg.Fatalf("Cannot run viewer: %v", err)
	}
}

func readSVG(f *Flags) bezier.Polygon {
	if _, err := os.Stat(f.InputFilePath); os.IsNotExist(err) {
		flag.Usage()
		os.Exit(1)
	}

	inputFile := f.InputFilePath

	if f.Inkscape {
		inkscapeProxy := inkscape.NewProxy(inkscape.Verbose(true))
		if err := inkscapeProxy.Run(); err != nil {
			glg.Fatalf("Cannot run inkscape: %v", err)
		}

		defer inkscapeProxy.Close()

		glg.Infof("running inkscape pre-processing")
		inputFile = f.InputFilePath + ".bezierdraw.svg"
		inkscapeProxy.RawCommands(
			fmt.Sprintf("file-open:%s", f.InputFilePath),
			fmt.Sprintf("export-filename:%s", inputFile),
			"export-type:svg",
			"select-all",
			"object-to-path",
			"export-do",
		)

		glg.Info("inkscape done.")
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		glg.Fatalf("Cannot read file %s: %v", inputFile, err)
	}

	drawing, err := pkg.Parse(data)
	if err != nil {
		glg.Fatalf("Cannot parse file %s: %v", inputFile, err)
	}

	poly := drawing.Scale(f.Scale).Vertices()
	glg.Infof("%d segments read, control polygon has %d points", len(drawing.Segments()), len(poly))

	return poly
}

// output writes results. If toStdout is set and no output file is given, samples are written to stdout.
func output(f *Flags, area *workspace.Workspace, poly bezier.Polygon, curve []bezier.Point, toStdout bool) error {
	if f.OutputFilePath != "" {
		if err := chart.Save(f.OutputFilePath, poly, curve, chart.Options{Bounds: area}, 0, 0); err != nil {
			return err
		}

		glg.Infof("Chart written to %s", f.OutputFilePath)
	}

	if f.GCodeFilePath != "" {
		builder, err := newGCodeBuilder(f, area)
		if err != nil {
			return err
		}

		builder.Commentf("Bezier curve of degree %d", poly.Degree())

		if err := builder.DrawCurve(curve); err != nil {
			builder.Dump()
			return fmt.Errorf("cannot generate GCode: %w", err)
		}

		if f.RepeatN > 0 {
			if err := builder.Repeat(f.RepeatN, gcb.RelativePos(f.RepeatDepth)); err != nil {
				return fmt.Errorf("cannot repeat GCode: %w", err)
			}
		}

		if err := os.WriteFile(f.GCodeFilePath, []byte(builder.String()), 0o644); err != nil {
			return fmt.Errorf("cannot write file %s: %w", f.GCodeFilePath, err)
		}

		glg.Infof("GCode written to %s", f.GCodeFilePath)
	}

	if toStdout && f.OutputFilePath == "" && f.GCodeFilePath == "" {
		for _, p := range curve {
			fmt.Printf("%f %f\n", p.X, p.Y)
		}
	}

	return nil
}

func newGCodeBuilder(f *Flags, area *workspace.Workspace) (*gcb.GCodeBuilder, error) {
	builder, err := gcb.NewGCodeBuilder()
	if err != nil {
		return nil, err
	}

	return builder.
		Fit(area).
		SetDepth(gcb.RelativePos(f.DepthDelta)).
		Calibrate(gcb.RelativePos(f.startZ)).
		Comments(!f.NoLineComments, f.CommentsAbove), nil
}
