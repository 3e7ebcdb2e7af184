package main

import (
	"log/slog"
	"net/http"
	"os"

	"threatboard/internal/server"
)

func main() {
	cfg := server.LoadConfig()
	srv, err := server.New(cfg)
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}

	srv.StartMetrics(cfg.MetricsAddr)

	slog.Info("listening", "addr", cfg.HTTPAddr, "metrics", cfg.MetricsAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, srv.Router()); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
