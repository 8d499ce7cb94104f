package main

import (
	"os"

	"github.com/trustdealzz/sitegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
