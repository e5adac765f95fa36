package main

import (
	"os"

	"github.com/cmlabs-hris/training-attendance/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
