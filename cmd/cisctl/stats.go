package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diamondpixel/Chunkis/cis"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <region>",
		Short: "Per-slot sizes, digests, and dedup summary",
		Long: `The stats command decodes every present slot and reports compressed
and inflated payload sizes, block and palette counts, and an xxhash64
payload digest. Slots sharing a digest store identical chunk data.

Example:
  cisctl stats r.0.0.cis
  cisctl stats r.0.0.cis --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
}

func runStats(path string) error {
	res, err := loadResolver()
	if err != nil {
		return err
	}
	r, err := cis.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	stats := r.Stats(res)

	if jsonOut {
		return printJSON(struct {
			Slots  []cis.SlotStat `json:"slots"`
			Unique int            `json:"unique_payloads"`
		}{stats, cis.UniquePayloads(stats)})
	}

	var failed int
	for _, st := range stats {
		if st.Error != "" {
			failed++
			printInfo("[%2d,%2d] skipped: %s\n", st.X, st.Z, st.Error)
			continue
		}
		fmt.Printf("[%2d,%2d] %6d -> %6d bytes  %4d block(s)  %3d palette  %016x\n",
			st.X, st.Z, st.CompressedSize, st.PayloadSize, st.Blocks, st.PaletteSize, st.Digest)
	}
	printInfo("%d slot(s), %d failed, %d unique payload(s)\n",
		len(stats), failed, cis.UniquePayloads(stats))
	return nil
}
