package main

import (
	"os"

	"github.com/vamsipaul1/futurefit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
