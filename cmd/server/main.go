package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mydiy-ie/llms-trigger-relay/internal/config"
	"github.com/mydiy-ie/llms-trigger-relay/internal/dispatch"
	httpTransport "github.com/mydiy-ie/llms-trigger-relay/internal/transport/http"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"info", "Log output level for the server [debug, info, trace]")
	triggerSecret = env.String("TRIGGER_SECRET", true,
		"", "Shared secret expected in the inbound Authorization header")
	ghOwner = env.String("GH_OWNER", true,
		"", "Owner of the GitHub repository receiving dispatch events")
	ghRepo = env.String("GH_REPO", true,
		"", "Name of the GitHub repository receiving dispatch events")
	ghToken = env.String("GH_TOKEN", true,
		"", "GitHub API token used for the outbound dispatch call")
	githubAPIURL = env.String("GITHUB_API_URL", false,
		"https://api.github.com", "Base URL of the GitHub REST API")
	defaultSite = env.String("DEFAULT_SITE", false,
		"https://www.mydiy.ie", "Default site URL when the payload omits one")
)

func main() {
	if err := env.Parse(); err != nil {
		fmt.Println(env.Help())
		os.Exit(1)
	}

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "llms-trigger-relay",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Collect the configuration once; components receive it explicitly
	cfg := config.Config{
		BindAddress:   *bindAddress,
		LogLevel:      *logLevel,
		TriggerSecret: *triggerSecret,
		Owner:         *ghOwner,
		Repo:          *ghRepo,
		Token:         *ghToken,
		APIBaseURL:    *githubAPIURL,
		DefaultSite:   *defaultSite,
	}

	if errs := config.NewValidation().Validate(cfg); len(errs) > 0 {
		for _, ve := range errs {
			logger.Error("Invalid configuration", "field", ve.Field, "message", ve.Message)
		}
		os.Exit(1)
	}

	// Initialize the dispatch client
	dispatcher := dispatch.NewGitHubClient(cfg, logger.Named("github-dispatch"))

	// Initialize HTTP handlers
	th := httpTransport.NewTriggerHandler(cfg, dispatcher, logger.Named("http-handler"))

	// Initialize the router
	router := httpTransport.NewRouter(th, logger)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         cfg.BindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", cfg.BindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	// Context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	server.Shutdown(shutdownCtx)
}
