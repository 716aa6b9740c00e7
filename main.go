package main

import (
	"fmt"
	"os"

	"github.com/valyala/fasthttp"

	"blended-fee-engine/internal/config"
	"blended-fee-engine/internal/format"
	"blended-fee-engine/internal/handler"
	"blended-fee-engine/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	f, err := format.New(cfg.Display.Locale, cfg.Display.Placeholder)
	if err != nil {
		log.WithError(err).Error("invalid display settings", nil)
		os.Exit(2)
	}

	h := handler.New(log, f, cfg.Server.MaxMutations)
	server := &fasthttp.Server{
		Name:               cfg.App.Name,
		Handler:            h.Route,
		ReadTimeout:        cfg.Server.ReadTimeout,
		WriteTimeout:       cfg.Server.WriteTimeout,
		MaxRequestBodySize: cfg.Server.MaxBodyBytes,
	}

	log.Info("blended fee engine starting", map[string]interface{}{
		"addr":        cfg.Server.Addr(),
		"environment": cfg.App.Environment,
		"version":     cfg.App.Version,
	})
	if err := server.ListenAndServe(cfg.Server.Addr()); err != nil {
		log.WithError(err).Error("server failed", nil)
		os.Exit(1)
	}
}
