package main

import (
	"log"

	"examgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("examgen: %v", err)
	}
}
