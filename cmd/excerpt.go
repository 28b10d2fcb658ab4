package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cuthbertLab/meterspan/midi"
)

func init() {
	rootCmd.AddCommand(excerptCmd)
}

var excerptCmd = &cobra.Command{
	Use:   "excerpt <in> <out> [ticksOffset]",
	Short: "Writes a short preview of a midi file",
	Long:  `Writes a short preview of a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			panic("Need in and out paths...")
		}
		var ticksOffset uint64
		if len(args) == 3 {
			arg3, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				panic(err)
			}
			ticksOffset = arg3
		}
		excerpt(args[0], args[1], ticksOffset)
	},
}

func excerpt(in, out string, ticksOffset uint64) {
	mf, err := midi.ReadFile(in)
	if err != nil {
		panic("Could not read file: " + err.Error())
	}
	preview := midi.Excerpt(mf, ticksOffset, 10)
	if err := preview.WriteFile(out); err != nil {
		panic("Write failed for preview file: " + err.Error())
	}
	fmt.Printf("Wrote preview to %v\n", out)
}
