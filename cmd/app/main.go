package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/antonguzun/lazy-crafter/internal/autocraft"
	"github.com/antonguzun/lazy-crafter/internal/catalog"
	"github.com/antonguzun/lazy-crafter/internal/config"
	"github.com/antonguzun/lazy-crafter/internal/craft"
	"github.com/antonguzun/lazy-crafter/internal/estimation"
	"github.com/antonguzun/lazy-crafter/internal/gamedata"
	"github.com/antonguzun/lazy-crafter/internal/parser"
	"github.com/antonguzun/lazy-crafter/internal/preset"
	"github.com/antonguzun/lazy-crafter/internal/server"
	"github.com/antonguzun/lazy-crafter/internal/translation"
	"github.com/antonguzun/lazy-crafter/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	files := gamedata.Files{
		Mods:            cfg.DataPath(cfg.ModsFile),
		BaseItems:       cfg.DataPath(cfg.BaseItemsFile),
		Translations:    cfg.DataPath(cfg.TranslationsFile),
		Representations: cfg.DataPath(cfg.RepresentationsFile),
	}
	var loaderOpts []gamedata.Option
	if cfg.ValidateData {
		loaderOpts = append(loaderOpts, gamedata.WithSchemaValidation(validation.NewSchemaValidator(), cfg.SchemaDir))
	}

	tables, err := gamedata.NewLoader(files, loaderOpts...).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load game data: %w", err)
	}

	cat, err := catalog.New(tables, translation.NewResolver(tables.Translations),
		catalog.WithPoolCache(cfg.CacheSize, cfg.CacheTTL))
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	itemParser, err := parser.New(cat)
	if err != nil {
		return fmt.Errorf("failed to build item parser: %w", err)
	}

	var presets craft.PresetStore
	if cfg.PresetsDir != "" {
		loader := preset.NewLoader(cfg.PresetsDir)
		if err := loader.Load(); err != nil {
			return fmt.Errorf("failed to load presets: %w", err)
		}
		presets = loader
	}

	svc := craft.NewService(cat, itemParser, estimation.New(cat), presets)
	srv := server.NewServer(cfg, svc, cat, autocraft.NewHandler(svc, autocraft.Config{}))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	return g.Wait()
}
