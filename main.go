package main

import (
	"os"

	"github.com/daylab/labmate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
