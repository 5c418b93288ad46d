package main

import (
	"flag"
	"os"

	"github.com/BuildByAnyMeans/FusionAPI/arrange"
	"github.com/BuildByAnyMeans/FusionAPI/centering"
	"github.com/marcuswu/makercad"
	"github.com/marcuswu/makercad/sketcher"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/spatial/r3"
)

// Generates a row of test cylinders laid out by the spacing solver:
// either a fixed gap between bodies or a fixed total extent. Useful as
// a print-in-place diameter test strip.
func main() {
	gap := flag.Float64("gap", 4, "gap between bodies in mm (fixed-gap mode)")
	extent := flag.Float64("extent", 0, "total row extent in mm, overrides -gap")
	height := flag.Float64("height", 8, "cylinder height in mm")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	diameters := []float64{3, 5, 8, 12, 16, 20}

	items := make([]arrange.Item, len(diameters))
	for i, d := range diameters {
		r := d / 2
		items[i] = arrange.Item{
			Min: r3.Vec{X: -r, Y: -r},
			Max: r3.Vec{X: r, Y: r, Z: *height},
		}
	}

	opts := arrange.Options{
		Axis:         centering.AxisX,
		Mode:         arrange.FixedGap,
		Ref:          arrange.ByBounds,
		Spacing:      *gap,
		RespectOrder: true,
	}
	if *extent > 0 {
		opts.Mode = arrange.Extent
		opts.Spacing = *extent
	}

	moves, err := arrange.Layout(items, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to lay out cylinders")
	}

	cad := makercad.NewMakerCad()
	var shapes makercad.ListOfShape
	for i, d := range diameters {
		x := items[i].Center(centering.AxisX) + moves[i].X
		loc := &sketcher.PlaneParameters{
			Location: sketcher.NewVectorFromValues(x, 0, 0),
			Normal:   cad.TopPlane.Normal,
			X:        cad.TopPlane.X,
		}
		shapes = append(shapes, cad.MakeCylinder(loc, d/2, *height))
		log.Info().Float64("diameter", d).Float64("x", x).Msg("Placed cylinder")
	}

	cad.ExportStl("arranged-cylinders.stl", shapes, makercad.QualityHigh)
}
