package main

import (
	"fmt"
	"os"

	"github.com/OWOTL/nuomi/internal/cli"
	"github.com/OWOTL/nuomi/internal/infrastructure/config"
)

func main() {
	flags := cli.ParseServeFlags()

	var cfg *config.Config
	if flags.ConfigPath != "" {
		loaded, err := config.Load(flags.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config %s: %v\n", flags.ConfigPath, err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrEnv()
	}

	if err := cli.RunServe(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
