package main

import (
	"os"

	"github.com/msto63/commons/cmd/segment/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
