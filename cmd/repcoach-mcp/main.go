// Command repcoach-mcp serves the RepCoach analysis tools over MCP stdio.
//
// Two modes:
//   - remote: -server http://host:port talks to a running RepCoach REST API
//   - local: no -server flag; loads config and runs the engine in-process
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/claude/repcoach/internal/config"
	"github.com/claude/repcoach/internal/emotion"
	"github.com/claude/repcoach/internal/mcp"
	"github.com/claude/repcoach/internal/oracle"
	"github.com/claude/repcoach/internal/progression"
	"github.com/claude/repcoach/internal/workout"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "base URL of a running RepCoach server (remote mode)")
	apiKey := flag.String("api-key", "", "API key for the remote server (remote mode)")
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	flag.Parse()

	// MCP uses stdout for the protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var analyzer mcp.Analyzer
	if *serverURL != "" {
		analyzer = mcp.NewHTTPClient(*serverURL, *apiKey)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		oracleClient := oracle.NewClient(cfg.Oracle.BaseURL, cfg.Oracle.APIKey, cfg.Oracle.Model, *cfg.Oracle.Temperature, log)
		oracleTimeout := time.Duration(cfg.Oracle.TimeoutSeconds) * time.Second
		analyzer = &mcp.Local{
			Engine:  progression.NewEngine(oracleClient, oracleTimeout, log),
			Planner: workout.NewPlanner(oracleClient, oracleTimeout, log),
			Adviser: emotion.NewAdviser(oracleClient, oracleTimeout, log),
		}
	}

	s := mcp.New(analyzer, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
