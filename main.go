package main

import (
	"os"

	"github.com/sherine-k/queuesim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
