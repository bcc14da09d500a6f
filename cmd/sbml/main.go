package main

import (
	"os"

	"github.com/msto63/sbml/cmd/sbml/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
