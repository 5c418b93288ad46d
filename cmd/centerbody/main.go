package main

import (
	"os"

	"github.com/BuildByAnyMeans/FusionAPI/centering"
	"github.com/marcuswu/makercad"
	"github.com/marcuswu/makercad/sketcher"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/spatial/r3"
)

// Builds a fixture plate with an off-center pocket, then centers an
// insert block inside the pocket. The pocket walls are the reference
// pairs; the centering engine returns the translation and the block is
// constructed at the translated position.
func main() {
	plateWidth := 120.
	plateDepth := 80.
	plateHeight := 10.
	pocketWidth := 60.
	pocketDepth := 40.
	pocketFloor := 4.
	blockWidth := 40.
	blockDepth := 24.
	pocketX := 10.
	pocketY := 5.

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cad := makercad.NewMakerCad()

	// Plate with the pocket cut off-center
	plate := cad.MakeBox(cad.TopPlane, plateWidth, plateDepth, plateHeight, true)
	pocketLoc := &sketcher.PlaneParameters{
		Location: sketcher.NewVectorFromValues(pocketX, pocketY, plateHeight),
		Normal:   cad.BottomPlane.Normal,
		X:        cad.TopPlane.X,
	}
	pocket := cad.MakeBox(pocketLoc, pocketWidth, pocketDepth, plateHeight-pocketFloor, true)
	fixture, err := cad.Remove(plate, makercad.ListOfShape{pocket})
	if err != nil {
		log.Fatal().Err(err).Msg("Error cutting pocket")
	}

	// The pocket walls are the centering references. Side walls for X,
	// front/back walls for Y, pocket floor against plate top for Z.
	rightPlane := &sketcher.PlaneParameters{
		Location: sketcher.NewVectorFromValues(0, 0, 0),
		Normal:   sketcher.NewVectorFromValues(1, 0, 0),
		X:        sketcher.NewVectorFromValues(0, 0, 1),
	}
	faces := fixture.Shape().Faces()

	wallLeft := faces.AlignedWith(rightPlane).FirstMatching(func(f *makercad.Face) bool {
		return f.DistanceFrom(pocketX-pocketWidth/2, pocketY, plateHeight-1) == 0
	})
	wallRight := faces.AlignedWith(rightPlane).FirstMatching(func(f *makercad.Face) bool {
		return f.DistanceFrom(pocketX+pocketWidth/2, pocketY, plateHeight-1) == 0
	})
	wallFront := faces.AlignedWith(cad.FrontPlane).FirstMatching(func(f *makercad.Face) bool {
		return f.DistanceFrom(pocketX, pocketY-pocketDepth/2, plateHeight-1) == 0
	})
	wallBack := faces.AlignedWith(cad.FrontPlane).FirstMatching(func(f *makercad.Face) bool {
		return f.DistanceFrom(pocketX, pocketY+pocketDepth/2, plateHeight-1) == 0
	})
	pocketFloorFace := faces.AlignedWith(cad.TopPlane).FirstMatching(func(f *makercad.Face) bool {
		return f.DistanceFrom(pocketX, pocketY, plateHeight) == plateHeight-pocketFloor
	})
	plateTop := faces.AlignedWith(cad.TopPlane).FirstMatching(func(f *makercad.Face) bool {
		return f.DistanceFrom(0, pocketY-pocketDepth/2-1, plateHeight) == 0
	})
	if wallLeft == nil || wallRight == nil || wallFront == nil || wallBack == nil ||
		pocketFloorFace == nil || plateTop == nil {
		log.Fatal().Msg("Could not find pocket reference faces")
	}

	// The block, as first built, sits centered on the origin. Its
	// height spans the pocket depth so the Z pair closes it flush.
	blockHeight := plateHeight - pocketFloor
	blockCenter := r3.Vec{Z: blockHeight / 2}

	result := centering.ComputeTranslation(centering.Request{
		TargetCenter: blockCenter,
		Pairs: []centering.Pair{
			centering.FacePair(wallLeft, wallRight, 0),
			centering.FacePair(wallFront, wallBack, 0),
			centering.FacePair(pocketFloorFace, plateTop, 0),
		},
	})
	for _, w := range result.Warnings {
		log.Warn().Int("pair", w.Pair).Msg(w.Kind.String())
	}
	if len(result.Axes) == 0 {
		log.Fatal().Msg("No reference pair produced an axis, nothing to center")
	}
	featureName := "Center Body (" + result.Label() + ")"
	log.Info().
		Str("feature", featureName).
		Float64("dx", result.Translation.X).
		Float64("dy", result.Translation.Y).
		Float64("dz", result.Translation.Z).
		Bool("alreadyCentered", result.AlreadyCentered).
		Msg("Computed centering translation")

	// Apply the move: the block's base plane sat on the origin, so the
	// translated base plane is the translation itself.
	blockLoc := &sketcher.PlaneParameters{
		Location: centering.SketcherVec(result.Translation),
		Normal:   cad.TopPlane.Normal,
		X:        cad.TopPlane.X,
	}
	block := cad.MakeBox(blockLoc, blockWidth, blockDepth, blockHeight, true)

	// Soften the block edges so it drops into the pocket
	block, err = cad.Fillet(block, block.Faces().Edges(), 1)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fillet the insert block")
	}

	exports := makercad.ListOfShape{fixture.Shape(), block}
	cad.ExportStl("centered-fixture.stl", exports, makercad.QualityHigh)
	cad.ExportStep("centered-fixture.step", exports)
}
