// Command server runs the CRM HTTP API.
//
// Configuration is read from the -config file (or CONFIG_PATH, default
// ./config.yaml) and the environment. Run with -env to list every supported
// variable. SIGINT or SIGTERM triggers a graceful shutdown.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/buildline/crm-backend/internal/app"
	"github.com/buildline/crm-backend/internal/config"
)

func main() {
	path := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	listEnv := flag.Bool("env", false, "print supported environment variables and exit")
	flag.Parse()

	if *listEnv {
		if err := config.Usage(os.Stdout); err != nil {
			log.Fatalf("server: %v", err)
		}
		return
	}

	cfg, err := config.LoadFile(*path)
	if err != nil {
		log.Fatalf("server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
