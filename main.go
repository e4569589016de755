package main

import (
	"os"

	"github.com/seclab/labstatus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
