package main

import "github.com/cuthbertLab/meterspan/cmd"

func main() {
	cmd.Execute()
}
