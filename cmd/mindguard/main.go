package main

import (
	"log"

	"mindguard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("mindguard: %v", err)
	}
}
