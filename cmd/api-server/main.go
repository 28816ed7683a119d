package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/aa-bridge-middleware/pkg/app"
	"github.com/chainsafe/aa-bridge-middleware/pkg/app/api"
	"github.com/chainsafe/aa-bridge-middleware/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.api-server.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadAPIServer(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "API server exited: %v\n", err)
		os.Exit(1)
	}
}
