package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cuthbertLab/meterspan/midi"
	"github.com/cuthbertLab/meterspan/model"
	"github.com/cuthbertLab/meterspan/score"
	"github.com/cuthbertLab/meterspan/stats"
	"github.com/cuthbertLab/meterspan/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir> [maxNum]",
	Short: "Creates a report over a directory of midi files",
	Long:  `Creates a report over a directory of midi files`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need a directory...")
		}
		var maxNum int
		if len(args) == 2 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			maxNum = arg2
		}
		report(args[0], maxNum)
	},
}

func report(dir string, maxNum int) {
	paths := util.GatherAllMidiPaths(dir, maxNum)

	var allSpans []model.Span
	var spanCounts []int
	signatures := make(map[string]int)

	for i, path := range paths {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(paths))
		mf, err := midi.ReadFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		sc, err := score.Build(filepath.Base(path), mf)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		allSpans = append(allSpans, sc.Spans...)
		spanCounts = append(spanCounts, len(sc.Spans))
		for _, ev := range sc.Meters {
			signatures[ev.Ratio]++
		}
	}

	summary := stats.Durations(allSpans)
	fmt.Printf("files: %v\n", len(spanCounts))
	fmt.Printf("spans: %v\n", util.Sum(spanCounts))
	fmt.Printf("duration mean: %vql\n", summary.Mean)
	fmt.Printf("duration stddev: %vql\n", summary.StdDev)
	fmt.Printf("duration median: %vql\n", summary.Median)
	fmt.Printf("duration min/max: %vql / %vql\n", summary.Min, summary.Max)

	for _, sig := range util.GetKeys(signatures) {
		fmt.Printf("signature %v: %v files\n", sig, signatures[sig])
	}
}
