// Package main provides the dmsim command line entry point.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("dmsim %s\n", version)
		return
	}

	fmt.Println("dmsim - exact density-matrix simulation of n-qubit registers")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("dmsim is a library; see examples/ for runnable programs.")
}
