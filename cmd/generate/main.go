package main

import (
	"fmt"
	"os"

	"github.com/OWOTL/nuomi/internal/cli"
)

func main() {
	flags := cli.ParseGenerateFlags()

	cli.PrintHeader("generate")

	if err := cli.RunGenerate(flags); err != nil {
		fmt.Fprintf(os.Stderr, "generate failed: %v\n", err)
		os.Exit(1)
	}
}
