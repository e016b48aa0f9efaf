package main

import (
	"os"

	"github.com/nebrasmahmood/dutch-learning-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
