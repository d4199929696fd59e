package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/gridiron/internal/api/rest"
	"github.com/fortuna/gridiron/internal/api/ws"
	"github.com/fortuna/gridiron/internal/assemble"
	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/fantasy"
	"github.com/fortuna/gridiron/internal/ingest/fbdb"
	"github.com/fortuna/gridiron/internal/ingest/pfr"
)

const (
	serviceName    = "gridiron"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - NFL Statistics Service", serviceName, serviceVersion)

	// Load configuration from environment
	config := loadConfig()

	// Initialize scrape clients
	pfrClient := pfr.New(config.PFRBase)
	fbdbClient := fbdb.New(config.FBDBBase)

	// Page cache is optional: the service scrapes directly without it
	if config.RedisURL != "" {
		pageCache, err := cache.NewPageCache(config.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer pageCache.Close()

		pfrClient.UseCache(pageCache)
		fbdbClient.UseCache(pageCache)
		log.Println("✓ Connected to Redis page cache")
	} else {
		log.Println("⚠️  No REDIS_URL set, page cache disabled")
	}

	// Fantasy scoring profile: YAML file when configured, defaults otherwise
	var profile fantasy.Settings
	if config.SettingsPath != "" {
		var err error
		profile, err = fantasy.LoadSettings(config.SettingsPath)
		if err != nil {
			log.Fatalf("Failed to load fantasy settings: %v", err)
		}
		log.Printf("✓ Loaded fantasy settings from %s", config.SettingsPath)
	}

	engine, err := fantasy.NewEngine(fbdbClient, profile)
	if err != nil {
		log.Fatalf("Failed to create fantasy engine: %v", err)
	}

	// Progress hub: scrapes triggered over HTTP broadcast their progress
	hub := ws.NewHub()
	reporter := ws.NewReporter(hub)

	assembler := assemble.New(pfrClient)
	handler := rest.NewHandler(assembler, engine, reporter)

	// Initialize REST API server
	restServer := rest.NewServer(config.RESTPort, handler)
	go func() {
		log.Printf("Starting REST API server on port %s", config.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	// Initialize WebSocket server
	wsServer := ws.NewServer(hub)
	go func() {
		log.Printf("Starting WebSocket server on port %s", config.WSPort)
		if err := wsServer.Start(config.WSPort); err != nil {
			log.Printf("WebSocket server error: %v", err)
		}
	}()

	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", config.RESTPort)
	log.Printf("  WebSocket: ws://0.0.0.0:%s/ws/progress", config.WSPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("WebSocket server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}

type Config struct {
	RedisURL     string
	RESTPort     string
	WSPort       string
	PFRBase      string
	FBDBBase     string
	SettingsPath string
}

func loadConfig() Config {
	return Config{
		RedisURL:     getEnv("REDIS_URL", ""),
		RESTPort:     getEnv("REST_PORT", "8080"),
		WSPort:       getEnv("WS_PORT", "8081"),
		PFRBase:      getEnv("PFR_BASE", ""),
		FBDBBase:     getEnv("FBDB_BASE", ""),
		SettingsPath: getEnv("FANTASY_SETTINGS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
