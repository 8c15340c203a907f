package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load an edge list into a CSR graph and answer queries from the command line
func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
