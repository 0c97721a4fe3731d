package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diamondpixel/Chunkis/cis"
)

var (
	blocksCX int
	blocksCZ int
)

func init() {
	cmd := newBlocksCmd()
	cmd.Flags().IntVar(&blocksCX, "cx", 0, "Chunk X within the region (0-15)")
	cmd.Flags().IntVar(&blocksCZ, "cz", 0, "Chunk Z within the region (0-15)")
	rootCmd.AddCommand(cmd)
}

func newBlocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks <region>",
		Short: "Print the block changes of one chunk",
		Long: `The blocks command decodes a single slot of a region file and prints
its block change list in encounter order.

Example:
  cisctl blocks r.0.0.cis --cx 3 --cz 7 --mapping global_ids.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlocks(args[0])
		},
	}
}

func runBlocks(path string) error {
	res, err := loadResolver()
	if err != nil {
		return err
	}
	r, err := cis.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	rec, err := r.DecodeSlot(blocksCX, blocksCZ, res)
	if err != nil {
		return fmt.Errorf("decoding chunk [%d,%d]: %w", blocksCX, blocksCZ, err)
	}

	if jsonOut {
		return printJSON(rec.Blocks)
	}
	printInfo("chunk [%d,%d]: %d block(s)\n", blocksCX, blocksCZ, len(rec.Blocks))
	for i, b := range rec.Blocks {
		fmt.Printf("%4d  (%2d, %4d, %2d) %s\n", i, b.X, b.Y, b.Z, b.State)
	}
	return nil
}
