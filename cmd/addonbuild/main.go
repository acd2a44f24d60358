package main

import (
	"github.com/ariel-frischer/addonbuild/internal/cli"
)

func main() {
	cli.Execute()
}
