package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diamondpixel/Chunkis/cis"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <region>",
		Short: "Summarize a region file's slot table",
		Long: `The info command reports which slots of a region file hold chunks and
how large their stored payloads are, without decoding them.

Example:
  cisctl info r.0.0.cis
  cisctl info r.0.0.cis --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

type slotInfo struct {
	X      int    `json:"x"`
	Z      int    `json:"z"`
	WorldX int    `json:"world_x"`
	WorldZ int    `json:"world_z"`
	Offset uint32 `json:"offset"`
	Length uint32 `json:"length"`
}

type regionInfo struct {
	Path       string     `json:"path"`
	Standalone bool       `json:"standalone"`
	RegionX    int        `json:"region_x"`
	RegionZ    int        `json:"region_z"`
	Slots      []slotInfo `json:"slots"`
}

func runInfo(path string) error {
	r, err := cis.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	rx, rz, named := cis.ParseRegionName(path)
	out := regionInfo{Path: path, Standalone: r.Standalone(), RegionX: rx, RegionZ: rz}

	if !r.Standalone() {
		for z := 0; z < 16; z++ {
			for x := 0; x < 16; x++ {
				e := r.Entry(x, z)
				if !e.Present() {
					continue
				}
				out.Slots = append(out.Slots, slotInfo{
					X: x, Z: z,
					WorldX: rx*16 + x, WorldZ: rz*16 + z,
					Offset: e.Offset, Length: e.Length,
				})
			}
		}
	}

	if jsonOut {
		return printJSON(out)
	}

	if r.Standalone() {
		printInfo("%s: standalone chunk payload\n", path)
		return nil
	}
	if named {
		printInfo("%s: region (%d, %d), %d chunk(s)\n", path, rx, rz, len(out.Slots))
	} else {
		printInfo("%s: %d chunk(s)\n", path, len(out.Slots))
	}
	for _, s := range out.Slots {
		fmt.Printf("  [%2d,%2d] world (%d, %d)  %d bytes at offset %d\n",
			s.X, s.Z, s.WorldX, s.WorldZ, s.Length, s.Offset)
	}
	return nil
}
