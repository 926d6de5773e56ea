package main

import (
	"os"

	"github.com/linwei/studymap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
