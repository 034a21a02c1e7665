// main is the entry point for the augmetrics CLI.
package main

import (
	"fmt"
	"os"

	"github.com/augmentcode/augmetrics/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
