package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"threatboard/internal/anomaly"
	"threatboard/internal/common"
	"threatboard/internal/intel"
	"threatboard/internal/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server owns the in-memory dataset and the HTTP surface over it.
type Server struct {
	cfg       *Config
	store     *intel.MemoryStore
	router    *mux.Router
	hub       *Hub
	upgrader  websocket.Upgrader
	templates *template.Template

	mu     sync.RWMutex
	points []anomaly.Point
}

// New builds a server and generates the initial dataset.
func New(cfg *Config) (*Server, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s := &Server{
		cfg:       cfg,
		store:     intel.NewMemoryStore(),
		router:    mux.NewRouter(),
		hub:       NewHub(),
		templates: templates,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.routes()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.rebuild(ctx, cfg.RecordCount); err != nil {
		return nil, fmt.Errorf("build dataset: %w", err)
	}
	return s, nil
}

func (s *Server) routes() {
	s.router.Use(s.instrument)
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/threats", s.handleThreats).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/anomalies", s.handleAnomalies).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/summary", s.handleSummary).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/heatmap", s.handleHeatmap).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/regenerate", s.handleRegenerate).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/live", s.handleLive).Methods(http.MethodGet)
}

// Router exposes the HTTP handler for the main listener.
func (s *Server) Router() http.Handler { return s.router }

// StartMetrics serves Prometheus metrics on its own listener.
func (s *Server) StartMetrics(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server error", "err", err)
		}
	}()
}

// rebuild regenerates the dataset: threat records through the feed
// loader, then the anomaly series correlated against the fresh
// critical indicators.
func (s *Server) rebuild(ctx context.Context, count int) error {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	now := time.Now()

	s.store.Reset()
	loader := intel.NewLoader(s.store)
	for _, src := range intel.MockSources(count, seed, now) {
		loader.Register(src)
	}
	if err := loader.Run(ctx); err != nil {
		return err
	}
	records := s.store.All()

	gen := anomaly.NewGenerator(s.cfg.AnomalyDays, s.cfg.PointsPerDay, seed, criticalIPs(records))
	points := anomaly.NewCorrelator(records, now).Annotate(gen.Generate(now))

	s.mu.Lock()
	s.points = points
	s.mu.Unlock()

	anomalies := 0
	for _, p := range points {
		if p.IsAnomaly {
			anomalies++
		}
	}
	metrics.DatasetRecords.Set(float64(len(records)))
	metrics.DatasetPoints.Set(float64(len(points)))
	metrics.DatasetAnomalies.Set(float64(anomalies))
	slog.Info("dataset built", "records", len(records), "points", len(points), "anomalies", anomalies)
	return nil
}

// snapshotPoints returns the current anomaly series.
func (s *Server) snapshotPoints() []anomaly.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.points
}

// criticalIPs collects up to a handful of critical IP indicators so
// the anomaly generator can stamp them as source hosts.
func criticalIPs(records []intel.ThreatRecord) []string {
	var hosts []string
	for _, r := range records {
		if r.Severity != common.SeverityCritical {
			continue
		}
		if t, ok := intel.Classify(r.Value); ok && t == common.IOCIPAddress {
			hosts = append(hosts, r.Value)
			if len(hosts) == 5 {
				break
			}
		}
	}
	return hosts
}
