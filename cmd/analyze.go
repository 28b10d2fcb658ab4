package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cuthbertLab/meterspan/midi"
	"github.com/cuthbertLab/meterspan/score"
	"github.com/cuthbertLab/meterspan/util"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dir> [maxNum]",
	Short: "Builds scores from a directory of midi files",
	Long:  `Builds scores from a directory of midi files`,
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
		analyze(args[0], maxNum)
	},
}

func analyze(dir string, maxNum int) {
	paths := util.GatherAllMidiPaths(dir, maxNum)
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
		fmt.Printf("%v  id=%v spans=%v duration=%vql meters=%v\n",
			sc.Name, sc.ID, sc.Tree.Len(), sc.Duration(), len(sc.Meters))
	}
}
