package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/citydrift/internal/config"
	"github.com/tatianab/citydrift/internal/engine"
	"github.com/tatianab/citydrift/internal/models"
	"github.com/tatianab/citydrift/internal/narrator"
	"github.com/tatianab/citydrift/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFile, err := tea.LogToFile(cfg.LogFile, "citydrift")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	logger := cfg.NewLogger(logFile)

	catalog, err := loadCatalog(cfg.EventsFile)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "events", catalog.Len(), "stages", len(catalog.Stages()), "file", cfg.EventsFile)

	var narr narrator.Narrator = narrator.Static{}
	if cfg.GeminiAPIKey != "" {
		g, err := narrator.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("creating narrator: %w", err)
		}
		defer g.Close()
		narr = g
		logger.Info("using Gemini narrator", "model", cfg.GeminiModel)
	}

	eng := engine.New(catalog,
		engine.WithRand(engine.NewRand(cfg.Seed)),
		engine.WithLogger(logger),
	)
	if err := tui.Run(eng, narr, logger); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func loadCatalog(path string) (*models.Catalog, error) {
	if path == "" {
		return models.DefaultCatalog()
	}
	return models.LoadCatalog(path)
}
