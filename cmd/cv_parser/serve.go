package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/truthtalent/cv-parser/internal/config"
	"github.com/truthtalent/cv-parser/internal/db"
	"github.com/truthtalent/cv-parser/internal/ingestion"
	"github.com/truthtalent/cv-parser/internal/logger"
	"github.com/truthtalent/cv-parser/internal/parsing"
	"github.com/truthtalent/cv-parser/internal/server"
	"github.com/truthtalent/cv-parser/internal/storage"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for CV upload, extraction, and candidate listing.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		TimeFormat: cfg.Log.TimeFormat,
	})

	ctx := context.Background()

	manager := ingestion.NewManager()
	pdfExtractor, err := ingestion.NewPDFExtractor(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize PDF extractor: %w", err)
	}
	manager.Register(ingestion.FormatPDF, pdfExtractor)

	parser := parsing.NewParser(parsing.WithMinTextLength(cfg.MinTextLength))

	deps := server.Deps{
		Parser:    parser,
		Extractor: manager,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		deps.Store = database
	} else {
		logger.Warn().Msg("DATABASE_URL not set, candidate persistence disabled")
	}

	if cfg.MinIO != nil {
		files, err := storage.NewFileStore(ctx, cfg.MinIO, logger.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
		deps.Files = files
	} else {
		logger.Warn().Msg("object storage not configured, CV file uploads will not be kept")
	}

	srv, err := server.New(cfg, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
