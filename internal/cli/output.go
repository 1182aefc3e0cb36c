package cli

import (
	"fmt"
	"strings"

	"github.com/OWOTL/nuomi/internal/domain/voucher"
)

// PrintHeader prints the application header
func PrintHeader(command string) {
	fmt.Printf("voucher-gen: %s\n", command)
}

// PrintSummary prints the generation result summary
func PrintSummary(result voucher.Result, outPath string) {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Summary: Matched=%d Skipped=%d Lines=%d\n",
		result.Matched,
		result.Skipped,
		len(result.Lines))

	if result.Skipped > 0 {
		fmt.Printf("\n%d transaction(s) matched no rule and were left out.\n", result.Skipped)
	}

	fmt.Printf("\nLedger written to %s\n", outPath)
}
