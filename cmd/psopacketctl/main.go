package main

import (
	"fmt"
	"os"

	"github.com/l1jgo/psocore/cmd/psopacketctl/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}
