package intel

import (
	"context"
	"time"

	"threatboard/internal/common"
)

// ThreatRecord is a single piece of threat intelligence. Records are
// immutable once generated and live only for the process lifetime.
type ThreatRecord struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	IOCType     common.IOCType  `json:"ioc_type"`
	Value       string          `json:"value"`
	Severity    common.Severity `json:"severity"`
	Description string          `json:"description"`
	Actor       string          `json:"actor,omitempty"`
	Source      string          `json:"source"`
}

// Source produces threat records for one named feed.
type Source interface {
	Name() string
	Generate(ctx context.Context) ([]ThreatRecord, error)
}

// Store receives generated records.
type Store interface {
	SaveRecords(ctx context.Context, records []ThreatRecord) error
}
