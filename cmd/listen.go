package cmd

import (
	"fmt"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/cuthbertLab/meterspan/util"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Prints the currently held notes from a live midi input",
	Long:  `Prints the currently held notes from a live midi input`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	onNotes := make(map[uint8]bool)
	// a chord arrives as a burst of note-ons; wait for the burst to
	// settle before printing
	debounced := debounce.New(50 * time.Millisecond)

	report := func() {
		keys := util.GetKeys(onNotes)
		if len(keys) == 0 {
			return
		}
		fmt.Printf("holding: %v\n", keys)
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes[key] = true
			debounced(report)
		case msg.GetNoteEnd(&ch, &key):
			delete(onNotes, key)
			debounced(report)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000) // lol
	stop()
}
