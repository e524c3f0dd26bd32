package main

import (
	"os"

	"github.com/abhisek/stdexam/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
