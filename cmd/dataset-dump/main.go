// dataset-dump generates one dataset and writes it to stdout as JSON.
// Useful for fixtures and for eyeballing generator output.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"threatboard/internal/anomaly"
	"threatboard/internal/intel"
)

func main() {
	count := flag.Int("count", 250, "threat records to generate")
	days := flag.Int("days", 7, "days of anomaly data")
	perDay := flag.Int("per-day", 24, "samples per metric per day")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-derived")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	now := time.Now()

	store := intel.NewMemoryStore()
	loader := intel.NewLoader(store)
	for _, src := range intel.MockSources(*count, *seed, now) {
		loader.Register(src)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := loader.Run(ctx); err != nil {
		slog.Error("generation failed", "err", err)
		os.Exit(1)
	}
	records := store.All()

	gen := anomaly.NewGenerator(*days, *perDay, *seed, nil)
	points := anomaly.NewCorrelator(records, now).Annotate(gen.Generate(now))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{
		"records": records,
		"points":  points,
	}); err != nil {
		slog.Error("encode failed", "err", err)
		os.Exit(1)
	}
}
