package main

import (
	"os"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
