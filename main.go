package main

import (
	"os"

	"github.com/rahulm/learnpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
