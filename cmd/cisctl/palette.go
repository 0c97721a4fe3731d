package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diamondpixel/Chunkis/cis"
)

var (
	paletteCX int
	paletteCZ int
)

func init() {
	cmd := newPaletteCmd()
	cmd.Flags().IntVar(&paletteCX, "cx", 0, "Chunk X within the region (0-15)")
	cmd.Flags().IntVar(&paletteCZ, "cz", 0, "Chunk Z within the region (0-15)")
	rootCmd.AddCommand(cmd)
}

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette <region>",
		Short: "Print one chunk's global palette",
		Long: `The palette command decodes a single slot and prints its global
palette: mapping id, facing code, and the resolved state string each
block change references by index.

Example:
  cisctl palette r.0.0.cis --cx 3 --cz 7 --mapping global_ids.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(args[0])
		},
	}
}

func runPalette(path string) error {
	res, err := loadResolver()
	if err != nil {
		return err
	}
	r, err := cis.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	rec, err := r.DecodeSlot(paletteCX, paletteCZ, res)
	if err != nil {
		return fmt.Errorf("decoding chunk [%d,%d]: %w", paletteCX, paletteCZ, err)
	}

	if jsonOut {
		return printJSON(rec.Palette)
	}
	printInfo("chunk [%d,%d]: %d palette entries\n", paletteCX, paletteCZ, len(rec.Palette))
	for i, p := range rec.Palette {
		fmt.Printf("%4d  id=%-5d facing=%d  %s\n", i, p.MappingID, p.Facing, p.State)
	}
	return nil
}
