package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/diamondpixel/Chunkis/cis"
)

var dumpMaxBlocks int

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpMaxBlocks, "max-blocks", 0, "Maximum blocks to print per chunk (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <region>",
		Short: "Decode and print every chunk in a region",
		Long: `The dump command decodes all chunks in a region file and prints their
block changes. Corrupt slots are reported and skipped; they never abort
the rest of the region.

Example:
  cisctl dump r.0.0.cis --mapping global_ids.json
  cisctl dump r.0.0.cis --max-blocks 20
  cisctl dump r.0.0.cis --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

type dumpedChunk struct {
	X     int              `json:"x"`
	Z     int              `json:"z"`
	Chunk *cis.ChunkRecord `json:"chunk"`
}

func runDump(path string) error {
	res, err := loadResolver()
	if err != nil {
		return err
	}
	r, err := cis.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	if jsonOut {
		var all []dumpedChunk
		for _, dc := range r.DecodeAll(res) {
			all = append(all, dumpedChunk{X: dc.X, Z: dc.Z, Chunk: dc.Chunk})
		}
		return printJSON(all)
	}

	it := r.Chunks(res)
	for {
		dc, err := it.Next()
		if err == io.EOF {
			return nil
		}
		if dc.Err != nil {
			printInfo("chunk [%d,%d]: skipped: %v\n", dc.X, dc.Z, dc.Err)
			continue
		}
		printInfo("chunk [%d,%d]: version %d, %d block(s), %d palette entries, %d block entities\n",
			dc.X, dc.Z, dc.Chunk.Version, len(dc.Chunk.Blocks), len(dc.Chunk.Palette), dc.Chunk.BlockEntityCount)
		for i, b := range dc.Chunk.Blocks {
			if dumpMaxBlocks > 0 && i >= dumpMaxBlocks {
				printInfo("  ... %d more\n", len(dc.Chunk.Blocks)-i)
				break
			}
			fmt.Printf("  (%2d, %4d, %2d) %s\n", b.X, b.Y, b.Z, b.State)
		}
	}
}
