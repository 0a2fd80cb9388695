package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fenwick/tilecollider/config"
	"github.com/fenwick/tilecollider/server/core"
	"github.com/fenwick/tilecollider/shared/protocol"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	port := flag.Uint("port", 0, "Server port (overrides config)")
	tickRate := flag.Int("tickrate", 0, "Server tick rate (overrides config)")
	levelsDir := flag.String("levels", "", "Assets directory containing levels/ (overrides config)")
	levelName := flag.String("level", "", "Level to run (overrides config)")
	watch := flag.Bool("watch", false, "Reload the active level when its TMX changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *tickRate != 0 {
		cfg.Server.TickRate = *tickRate
	}
	if *levelsDir != "" {
		cfg.Server.LevelsDir = *levelsDir
	}
	if *levelName != "" {
		cfg.Server.Level = *levelName
	}
	if *watch {
		cfg.Server.WatchLevels = true
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	levels, names, err := core.LoadAllServerLevels(cfg.Server.LevelsDir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	active := cfg.Server.Level
	if active == "" {
		active = names[0]
	}
	level, ok := levels[active]
	if !ok {
		log.Fatalf("Level %q not found, available: %v", active, names)
	}

	server := core.NewServer(cfg, level)

	if cfg.Server.WatchLevels {
		watcher, err := core.NewLevelWatcher(server, cfg.Server.LevelsDir, active)
		if err != nil {
			log.Fatalf("Failed to watch levels: %v", err)
		}
		defer watcher.Close()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting server %q on port %d (tick rate: %d/s, level: %s)",
		cfg.Server.Name, cfg.Server.Port, cfg.Server.TickRate, active)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
