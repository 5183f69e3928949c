package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/brand-checker/internal/config"
	"github.com/jonathan/brand-checker/internal/server"
)

var (
	servePort        int
	serveHost        string
	serveProfilePath string
	serveAuditLog    string
	serveConfigPath  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the brand check API server",
	Long:  `Start an HTTP server exposing POST /check, POST /check/batch, GET /health, and GET /profile.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 3001)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (default localhost)")
	serveCmd.Flags().StringVarP(&serveProfilePath, "profile", "p", "", "Path to brand profile (default ./brand-profile.json or BRAND_PROFILE)")
	serveCmd.Flags().StringVar(&serveAuditLog, "audit-log", "", "Append audit entries to this JSONL file")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Profile:  serveProfilePath,
		AuditLog: serveAuditLog,
		Host:     serveHost,
		Port:     servePort,
	}

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	// Environment fallbacks, then fixed defaults.
	if cfg.Profile == "" {
		cfg.Profile = os.Getenv("BRAND_PROFILE")
	}
	if cfg.Profile == "" {
		cfg.Profile = "./brand-profile.json"
	}
	if cfg.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			cfg.Port = port
		}
	}
	if cfg.Port == 0 {
		cfg.Port = 3001
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Host:        cfg.Host,
		Port:        cfg.Port,
		ProfilePath: cfg.Profile,
		AuditLog:    cfg.AuditLog,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
