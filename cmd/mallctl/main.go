package main

import (
	"os"

	"github.com/mallcloud/mallctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
