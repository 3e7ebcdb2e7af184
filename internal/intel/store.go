package intel

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// Loader coordinates generating sources and feeds their output into a
// store. Sources run concurrently; record order is restored by the
// store snapshot, which returns newest first.
type Loader struct {
	sources []Source
	store   Store
}

// NewLoader creates a loader bound to a store.
func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

// Register adds a source to the loader.
func (l *Loader) Register(s Source) {
	l.sources = append(l.sources, s)
}

// Run executes all sources and saves their batches.
func (l *Loader) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for _, s := range l.sources {
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()
			records, err := src.Generate(ctx)
			if err != nil {
				slog.Error("generate failed", "source", src.Name(), "err", err)
				return
			}
			if err := l.store.SaveRecords(ctx, records); err != nil {
				slog.Error("store failed", "source", src.Name(), "err", err)
			}
		}(s)
	}
	wg.Wait()
	return nil
}

// MemoryStore holds the session dataset. Records are never mutated in
// place; readers get a copy.
type MemoryStore struct {
	mu      sync.Mutex
	records []ThreatRecord
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) SaveRecords(ctx context.Context, records []ThreatRecord) error {
	m.mu.Lock()
	m.records = append(m.records, records...)
	m.mu.Unlock()
	slog.Info("stored records", "count", len(records))
	return nil
}

// Reset drops the current dataset ahead of a regeneration.
func (m *MemoryStore) Reset() {
	m.mu.Lock()
	m.records = nil
	m.mu.Unlock()
}

// All returns a copy of the dataset ordered newest first.
func (m *MemoryStore) All() []ThreatRecord {
	m.mu.Lock()
	out := append([]ThreatRecord(nil), m.records...)
	m.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Len reports the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
