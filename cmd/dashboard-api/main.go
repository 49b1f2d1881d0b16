package main

import (
	"flag"
	"log"
	"time"

	"asset-dashboard/internal/api"
	"asset-dashboard/internal/api/handler"
	"asset-dashboard/internal/apiclient"
	"asset-dashboard/internal/config"
	"asset-dashboard/internal/store"
	"asset-dashboard/pkg/router"
)

// @title Asset Dashboard API
// @version 1.0
// @description REST backend for the asset-and-employee management dashboard
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatal(err)
	}

	// Wire the upstream client used by POST /api/v1/sync
	if cfg.UpstreamURL != "" {
		client := apiclient.New(cfg.UpstreamURL)
		client.Policy = cfg.RetryPolicy()
		client.OnRetry = func(attempt int, delay time.Duration, err error) {
			log.Printf("🔄 Upstream attempt %d failed: %v (retrying in %v)", attempt, err, delay)
		}
		handler.SetUpstream(client)
	}

	// Create router and register API routes
	r := router.New()
	api.RegisterRoutes(r)

	// Start server
	r.Start(cfg.ListenAddr)
}
