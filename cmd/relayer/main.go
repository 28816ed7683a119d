package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/aa-bridge-middleware/pkg/app"
	"github.com/chainsafe/aa-bridge-middleware/pkg/app/relayer"
	"github.com/chainsafe/aa-bridge-middleware/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.relayer.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadRelayer(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = relayer.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Relayer exited: %v\n", err)
		os.Exit(1)
	}
}
