package main

import (
	"os"

	"sproutly/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
