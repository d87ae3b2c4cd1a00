package main

import (
	"os"

	"github.com/bianoble/unity-assets/cmd/unity-assets/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
