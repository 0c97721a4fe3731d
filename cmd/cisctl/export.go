package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diamondpixel/Chunkis/cis"
	"github.com/diamondpixel/Chunkis/cis/export"
)

var (
	exportOut    string
	exportFormat string
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path (required)")
	cmd.Flags().StringVar(&exportFormat, "format", "glb", "Export format: glb or json")
	_ = cmd.MarkFlagRequired("out")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <region>",
		Short: "Export decoded block changes as GLB or JSON",
		Long: `The export command decodes every chunk of a region and writes the
combined block changes as a binary glTF mesh (one colored cube per
block) or as a JSON document.

Example:
  cisctl export r.0.0.cis -o edits.glb --mapping global_ids.json
  cisctl export r.0.0.cis -o edits.json --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0])
		},
	}
}

func runExport(path string) error {
	res, err := loadResolver()
	if err != nil {
		return err
	}
	r, err := cis.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	decoded := r.DecodeAll(res)

	switch exportFormat {
	case "glb":
		// Offset chunk-local X/Z into region-local block coordinates so the
		// mesh lays chunks out side by side.
		var blocks []cis.BlockChange
		for _, dc := range decoded {
			for _, b := range dc.Chunk.Blocks {
				b.X += int32(dc.X) * 16
				b.Z += int32(dc.Z) * 16
				blocks = append(blocks, b)
			}
		}
		if err := export.SaveGLB(blocks, exportOut); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}
		printInfo("wrote %d block(s) from %d chunk(s) to %s\n", len(blocks), len(decoded), exportOut)
		return nil
	case "json":
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		var all []dumpedChunk
		for _, dc := range decoded {
			all = append(all, dumpedChunk{X: dc.X, Z: dc.Z, Chunk: dc.Chunk})
		}
		if err := writeJSONTo(f, all); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}
		printInfo("wrote %d chunk(s) to %s\n", len(all), exportOut)
		return nil
	default:
		return fmt.Errorf("unknown export format %q (want glb or json)", exportFormat)
	}
}
