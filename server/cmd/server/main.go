package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/flintgame/flint/server/core"
	"github.com/flintgame/flint/shared/netconfig"
	"github.com/flintgame/flint/shared/protocol"
)

func main() {
	port := flag.Uint("port", netconfig.DefaultPort, "Server port")
	tickRate := flag.Int("tickrate", netconfig.DefaultTickRate, "Server tick rate (updates per second)")
	name := flag.String("name", "Flint Server", "Server display name")
	version := flag.String("version", netconfig.ProtocolVersion, "Required client version (empty = accept any)")
	assetsDir := flag.String("assets", "assets", "Directory containing levels/*.tmx")
	levelName := flag.String("level", "", "Level to run (default: first level found)")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	level, err := core.LoadServerLevel(*assetsDir, *levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	server := core.NewServer(core.Config{
		TickRate: *tickRate,
		Name:     *name,
		Version:  *version,
		Level:    level,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting Flint server %q on port %d (tick rate: %d/s, version: %q)",
		*name, *port, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
