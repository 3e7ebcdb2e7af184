package server

import (
	"bufio"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"threatboard/internal/anomaly"
	"threatboard/internal/common"
	"threatboard/internal/intel"
	"threatboard/internal/metrics"
	"threatboard/internal/query"
)

// statusRecorder captures the response status for instrumentation.
// It forwards Hijack so the websocket upgrade keeps working.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hj.Hijack()
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Severities": common.Severities,
		"IOCTypes":   common.IOCTypes,
		"Metrics":    anomaly.Metrics(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		slog.Error("template render failed", "err", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// multiValues merges repeated query params and comma-separated lists,
// so ?severity=high,critical and ?severity=high&severity=critical are
// equivalent.
func multiValues(r *http.Request, key string) []string {
	var out []string
	for _, raw := range r.URL.Query()[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func (s *Server) handleThreats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := query.ParseFilter(multiValues(r, "severity"), multiValues(r, "ioc_type"), q.Get("q"))
	if f.Search != "" {
		if t, ok := intel.Classify(f.Search); ok {
			metrics.SearchesClassified.WithLabelValues(string(t)).Inc()
		}
	}

	records := s.store.All()
	start := time.Now()
	filtered := query.Apply(records, f)
	metrics.FilterDuration.Observe(time.Since(start).Seconds())

	if key := q.Get("sort"); key != "" {
		descending := q.Get("order") != "asc"
		filtered = query.SortRecords(filtered, key, descending)
	}

	matched := len(filtered)
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 && n < len(filtered) {
			filtered = filtered[:n]
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"records":   filtered,
		"displayed": len(filtered),
		"matched":   matched,
		"total":     len(records),
	})
}

func (s *Server) handleAnomalies(w http.ResponseWriter, r *http.Request) {
	points := s.snapshotPoints()
	// An unknown metric name is ignored, same as any invalid filter.
	if metric := r.URL.Query().Get("metric"); metric != "" && knownMetric(metric) {
		selected := make([]anomaly.Point, 0, len(points))
		for _, p := range points {
			if p.Metric == metric {
				selected = append(selected, p)
			}
		}
		points = selected
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"points":  points,
		"metrics": anomaly.Metrics(),
	})
}

func knownMetric(name string) bool {
	for _, m := range anomaly.Metrics() {
		if m == name {
			return true
		}
	}
	return false
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, query.Summarize(s.store.All(), s.snapshotPoints()))
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"rows": query.Heatmap(s.store.All()),
	})
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	count := s.cfg.RecordCount
	if raw := r.FormValue("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			count = n // the generator clamps negatives to zero
		}
	}
	if err := s.rebuild(r.Context(), count); err != nil {
		writeError(w, http.StatusInternalServerError, "regeneration failed")
		return
	}
	metrics.Regenerations.Inc()

	summary := query.Summarize(s.store.All(), s.snapshotPoints())
	s.broadcastSummary(summary)
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) broadcastSummary(summary query.Summary) {
	payload, err := json.Marshal(summary)
	if err != nil {
		slog.Error("summary encode failed", "err", err)
		return
	}
	s.hub.Broadcast(payload)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("live upgrade failed", "err", err)
		return
	}
	client := &wsClient{conn: conn}
	s.hub.Register(client)
	metrics.LiveSubscribers.Inc()
	go func() {
		defer func() {
			s.hub.Unregister(client)
			metrics.LiveSubscribers.Dec()
			client.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
