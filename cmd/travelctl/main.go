package main

import (
	"fmt"
	"os"

	"travel-assistant/cmd/travelctl/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
