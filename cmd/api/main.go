package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"cvstudio/internal/api"
	"cvstudio/internal/config"
	"cvstudio/internal/export"
	"cvstudio/internal/render"
	"cvstudio/internal/store"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	st := store.New()
	rasterizer := export.NewBrowserRasterizer(logger, cfg.Export.BrowserBin, cfg.Export.Settle())
	exporter := export.New(logger, rasterizer)

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, st, renderer, exporter, cfg, logger)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
