package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meterspan",
	Short: "Symbolic-music timespan indexing and meter analysis",
	Long:  `Indexes note spans from MIDI files and answers overlap and metrical-position queries.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
