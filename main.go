package main

import (
	"os"

	"github.com/sunwei/pagegen/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:]))
}
