package main

import (
	"os"

	"github.com/nlpgym/tagdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
