package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/bezierdraw/pkg/bezier"
	"github.com/gucio321/bezierdraw/pkg/gcb"
	"github.com/gucio321/bezierdraw/pkg/viewer"
	"github.com/gucio321/bezierdraw/pkg/workspace"
)

func main() {
	inputFile := flag.String("i", "", "Input GCode file")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	// load file
	data, err := os.ReadFile(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	// parse file
	builder, err := gcb.NewGCodeBuilderFromGCode(data)
	if err != nil {
		glg.Fatal(err)
	}

	area, err := workspace.Get(gcb.PrinterWorkspace)
	if err != nil {
		glg.Fatal(err)
	}

	// strokes are relative to the area's corner
	offset := bezier.Pt(area.MinX, area.MinY)
	strokes := make([][]bezier.Point, 0)
	for _, s := range builder.Strokes() {
		stroke := gcb.ToCurve(s...)
		for i := range stroke {
			stroke[i] = stroke[i].Add(offset)
		}

		strokes = append(strokes, stroke)
	}

	glg.Infof("%d strokes read from %s", len(strokes), *inputFile)

	v := viewer.NewViewer(area, bezier.DefaultSamples).ReadOnly().Strokes(strokes...)

	ebiten.SetWindowSize(viewer.DefaultWidth, viewer.DefaultHeight)
	if err := ebiten.RunGame(v); err != nil {
		glg.Fatal(err)
	}
}
