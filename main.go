package main

import (
	"os"

	"pocketshelf/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
