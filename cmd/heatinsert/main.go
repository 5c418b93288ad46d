package main

import (
	"flag"
	"os"

	"github.com/BuildByAnyMeans/FusionAPI/arrange"
	"github.com/BuildByAnyMeans/FusionAPI/centering"
	"github.com/BuildByAnyMeans/FusionAPI/inserts"
	"github.com/marcuswu/makercad"
	"github.com/marcuswu/makercad/sketcher"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/spatial/r3"
)

// Generates a heat-set insert test coupon: one stepped insert bore with
// counterbore per catalog thread size, cut into a single plate. Print
// it, press inserts, and keep the coupon that fits.
func main() {
	fitStyle := flag.String("fit", "insert", "counterbore fit: insert or screw")
	extraDepth := flag.Float64("extra-depth", 0, "extra bore depth in mm")
	gap := flag.Float64("gap", 8, "gap between holes in mm")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	fit := inserts.FlushInsert
	if *fitStyle == "screw" {
		fit = inserts.FlushScrew
	}

	// Resolve every catalog size up front; the largest length of each
	// size gives the worst-case bore for plate thickness.
	sizes := inserts.Sizes()
	holes := make([]inserts.HoleDims, 0, len(sizes))
	maxDepth := 0.
	for _, size := range sizes {
		lengths := inserts.Lengths(size)
		longest := lengths[len(lengths)-1]
		dims, err := inserts.Resolve(size, longest, fit, *extraDepth)
		if err != nil {
			log.Fatal().Err(err).Str("size", size).Msg("Failed to resolve insert")
		}
		holes = append(holes, dims)
		if d := dims.CounterboreDepth + dims.InsertDepth; d > maxDepth {
			maxDepth = d
		}
	}

	// Space the holes along X by their counterbore footprint
	items := make([]arrange.Item, len(holes))
	for i, h := range holes {
		r := h.CounterboreDia / 2
		items[i] = arrange.Item{
			Min: r3.Vec{X: -r, Y: -r},
			Max: r3.Vec{X: r, Y: r},
		}
	}
	moves, err := arrange.Layout(items, arrange.Options{
		Axis:         centering.AxisX,
		Mode:         arrange.FixedGap,
		Ref:          arrange.ByBounds,
		Spacing:      *gap,
		RespectOrder: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to lay out holes")
	}

	margin := 6.
	rowStart := items[0].Min.X + moves[0].X
	rowEnd := items[len(items)-1].Max.X + moves[len(items)-1].X
	plateWidth := rowEnd - rowStart + 2*margin
	plateDepth := 0.
	for _, h := range holes {
		if h.CounterboreDia+2*margin > plateDepth {
			plateDepth = h.CounterboreDia + 2*margin
		}
	}
	plateHeight := maxDepth + 2
	// Center the hole row on the plate
	rowShift := -(rowStart + rowEnd) / 2

	cad := makercad.NewMakerCad()
	plate := cad.MakeBox(cad.TopPlane, plateWidth, plateDepth, plateHeight, true)

	// Cut tools per hole: counterbore, then the stepped insert bore
	// below it (wide top half, narrow bottom half)
	downAt := func(x, z float64) *sketcher.PlaneParameters {
		return &sketcher.PlaneParameters{
			Location: sketcher.NewVectorFromValues(x, 0, z),
			Normal:   cad.BottomPlane.Normal,
			X:        cad.TopPlane.X,
		}
	}
	var tools makercad.ListOfShape
	for i, h := range holes {
		x := items[i].Center(centering.AxisX) + moves[i].X + rowShift
		z := plateHeight
		tools = append(tools, cad.MakeCylinder(downAt(x, z), h.CounterboreDia/2, h.CounterboreDepth))
		z -= h.CounterboreDepth
		tools = append(tools, cad.MakeCylinder(downAt(x, z), h.TopDia/2, h.InsertDepth/2))
		z -= h.InsertDepth / 2
		tools = append(tools, cad.MakeCylinder(downAt(x, z), h.BottomDia/2, h.InsertDepth/2))
	}

	coupon, err := cad.Remove(plate, tools)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to cut insert bores")
	}

	// Chamfer the counterbore lead-in edges
	leadIns := coupon.Shape().Faces().Edges().IsCircle().Matching(func(e *sketcher.Edge) bool {
		return e.FirstVertex().Z() == plateHeight
	})
	shape, err := cad.Chamfer(coupon.Shape(), leadIns, 0.4)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to chamfer lead-ins")
	}

	for i, size := range sizes {
		log.Info().
			Str("size", size).
			Float64("x", items[i].Center(centering.AxisX)+moves[i].X+rowShift).
			Float64("boreDepth", holes[i].InsertDepth).
			Msg("Placed insert bore")
	}

	exports := makercad.ListOfShape{shape}
	cad.ExportStl("insert-coupon.stl", exports, makercad.QualityHigh)
	cad.ExportStep("insert-coupon.step", exports)
}
