// coral-serve grows a coral structure in real time and streams each
// newly occupied cell to websocket clients, with a small HTTP API for
// state inspection and resets.
package main

import (
	"flag"
	"net/http"

	"coral-ca/internal/sims/coral"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configPath := flag.String("config", "", "YAML configuration file (defaults when empty)")
	tps := flag.Int("tps", 120, "growth steps per second")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := NewLogger(*logLevel)

	cfg := coral.DefaultConfig()
	if *configPath != "" {
		loaded, err := coral.LoadConfig(*configPath)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		cfg = loaded
	}

	world, err := coral.NewWithConfig(cfg)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	server := NewServer(world, *tps, logger)
	defer server.Close()
	go server.Run()

	logger.Infof("serving %s on %s (grid %d, seed %d, %d tps)",
		world.Name(), *addr, cfg.GridSize, cfg.Seed, *tps)
	if err := http.ListenAndServe(*addr, server.Routes()); err != nil {
		logger.Fatalf("server: %v", err)
	}
}
