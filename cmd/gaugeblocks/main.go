package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/BuildByAnyMeans/FusionAPI/params"
	"github.com/marcuswu/makercad"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Batch-generates gauge blocks from a parameter table. One chamfered
// block per row, exported as STL and STEP into a directory named after
// the row label. A bad row is logged and skipped, not fatal.
func main() {
	tablePath := flag.String("table", "gauge-blocks.yaml", "parameter table to generate from")
	outDir := flag.String("out", "output", "output directory")
	chamfer := flag.Float64("chamfer", 0.3, "edge chamfer in mm, 0 disables")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	table, err := params.Load(*tablePath)
	if err != nil {
		log.Fatal().Err(err).Str("table", *tablePath).Msg("Failed to load parameter table")
	}
	scale := table.Scale()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directory")
	}

	generated := 0
	for _, block := range table.Blocks {
		if err := generate(block, scale, *outDir, *chamfer); err != nil {
			log.Error().Err(err).Str("label", block.Label).Msg("Skipping block")
			continue
		}
		log.Info().Str("label", block.Label).Msg("Exported gauge block")
		generated++
	}
	log.Info().Int("generated", generated).Int("rows", len(table.Blocks)).Msg("Done")
}

func generate(block params.GaugeBlock, scale float64, outDir string, chamfer float64) error {
	cad := makercad.NewMakerCad()
	shape := cad.MakeBox(cad.TopPlane, block.Length*scale, block.Width*scale, block.Thickness*scale, true)

	if chamfer > 0 {
		chamfered, err := cad.Chamfer(shape, shape.Faces().Edges(), chamfer)
		if err != nil {
			return err
		}
		shape = chamfered
	}

	dir := filepath.Join(outDir, block.SafeLabel())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	exports := makercad.ListOfShape{shape}
	cad.ExportStl(filepath.Join(dir, block.SafeLabel()+".stl"), exports, makercad.QualityHigh)
	cad.ExportStep(filepath.Join(dir, block.SafeLabel()+".step"), exports)
	return nil
}
