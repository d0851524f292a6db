package main

import (
	"github.com/mratw/zombie-defense/internal/cli"
)

func main() {
	cli.Execute()
}
