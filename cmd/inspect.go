package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cuthbertLab/meterspan/interval"
	"github.com/cuthbertLab/meterspan/meter"
	"github.com/cuthbertLab/meterspan/midi"
	"github.com/cuthbertLab/meterspan/score"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspects a score's index tree and meters",
	Long:  `Inspects a score's index tree and meters`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	mf, err := midi.ReadFile(path)
	if err != nil {
		panic("Could not read file: " + err.Error())
	}
	sc, err := score.Build(filepath.Base(path), mf)
	if err != nil {
		panic("Could not build score: " + err.Error())
	}

	fmt.Printf("score: %v (%v)\n", sc.Name, sc.ID)
	fmt.Printf("spans: %v, duration: %vql\n", sc.Tree.Len(), sc.Duration())
	if sc.Tree.Root != nil {
		fmt.Printf("tree height: %v, root balance: %v\n", sc.Tree.Root.Height, sc.Tree.Root.Balance)
		fmt.Printf("stop offsets: earliest %v, latest %v\n",
			sc.Tree.Root.EarliestStopOffset, sc.Tree.Root.LatestStopOffset)
		printNode(sc.Tree.Root, 0)
	}

	for _, ev := range sc.Meters {
		sig, err := meter.NewTimeSignature(ev.Ratio)
		if err != nil {
			fmt.Printf("meter @%v: bad ratio %v: %v\n", ev.Offset, ev.Ratio, err)
			continue
		}
		if err := sig.Beat.PartitionDefault(); err != nil {
			fmt.Printf("meter @%v: %v\n", ev.Offset, err)
			continue
		}
		fmt.Printf("meter @%v: %v, beats %v\n", ev.Offset, sig, sig.Beat)
	}
}

func printNode(n *interval.Node, depth int) {
	if n == nil {
		return
	}
	printNode(n.LeftChild, depth+1)
	fmt.Printf("%*soffset %v: %v spans, height %v, balance %v\n",
		depth*2, "", n.StartOffset, len(n.Payload), n.Height, n.Balance)
	printNode(n.RightChild, depth+1)
}
