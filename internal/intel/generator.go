package intel

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"threatboard/internal/common"
)

// Feed names stamped on generated records.
const (
	FeedInternalScan = "internal_scan"
	FeedOSINT        = "osint_feed"
	FeedPartner      = "partner_intel"
)

var actors = []string{"APT_Shadow", "CrimsonSpider", "GenericBotnet", "PhishingGroupX"}

var urlHosts = []string{"evil-site", "phish-central", "update-service"}

const hexDigits = "abcdef0123456789"

// Generator synthesizes threat records for a single feed. It is a mock
// Source: output is random but fully determined by the seed.
type Generator struct {
	feed  string
	count int
	rng   *rand.Rand
	now   time.Time
}

// NewGenerator builds a generator producing count records stamped with
// the given feed name. A negative count is treated as zero.
func NewGenerator(feed string, count int, seed int64, now time.Time) *Generator {
	if count < 0 {
		count = 0
	}
	return &Generator{
		feed:  feed,
		count: count,
		rng:   rand.New(rand.NewSource(seed)),
		now:   now,
	}
}

// Name implements Source.
func (g *Generator) Name() string { return g.feed }

// Generate produces the record batch, newest first.
func (g *Generator) Generate(ctx context.Context) ([]ThreatRecord, error) {
	records := make([]ThreatRecord, 0, g.count)
	for i := 0; i < g.count; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		records = append(records, g.record())
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records, nil
}

func (g *Generator) record() ThreatRecord {
	iocType := common.IOCTypes[g.rng.Intn(len(common.IOCTypes))]
	severity := common.Severities[g.rng.Intn(len(common.Severities))]

	// Roughly a third of records stay unattributed, as real feeds do.
	actor := ""
	if g.rng.Float64() > 0.3 {
		actor = actors[g.rng.Intn(len(actors))]
	}

	// Timestamps scatter over the trailing 30 days.
	age := time.Duration(g.rng.Intn(30))*24*time.Hour + time.Duration(g.rng.Intn(24))*time.Hour

	id := uuid.Must(uuid.NewRandomFromReader(g.rng))
	return ThreatRecord{
		ID:          id.String(),
		Timestamp:   g.now.Add(-age),
		IOCType:     iocType,
		Value:       g.value(iocType),
		Severity:    severity,
		Description: describe(iocType, actor),
		Actor:       actor,
		Source:      g.feed,
	}
}

func (g *Generator) value(t common.IOCType) string {
	switch t {
	case common.IOCIPAddress:
		return fmt.Sprintf("%d.%d.%d.%d",
			1+g.rng.Intn(255), g.rng.Intn(256), g.rng.Intn(256), 1+g.rng.Intn(254))
	case common.IOCDomain:
		return fmt.Sprintf("malicious-domain-%d.com", 100+g.rng.Intn(900))
	case common.IOCFileHash:
		b := make([]byte, 64)
		for i := range b {
			b[i] = hexDigits[g.rng.Intn(len(hexDigits))]
		}
		return string(b)
	default:
		return fmt.Sprintf("http://%s/payload%d.exe",
			urlHosts[g.rng.Intn(len(urlHosts))], 1+g.rng.Intn(100))
	}
}

func describe(t common.IOCType, actor string) string {
	if actor == "" {
		return fmt.Sprintf("Unattributed %s indicator", t)
	}
	return fmt.Sprintf("Indicator of type %s attributed to %s", t, actor)
}

// MockSources splits count records across the three standard feeds,
// each feed seeded independently so batches stay deterministic.
func MockSources(count int, seed int64, now time.Time) []Source {
	if count < 0 {
		count = 0
	}
	feeds := []string{FeedInternalScan, FeedOSINT, FeedPartner}
	per := count / len(feeds)
	rem := count % len(feeds)
	sources := make([]Source, 0, len(feeds))
	for i, feed := range feeds {
		n := per
		if i == 0 {
			n += rem
		}
		sources = append(sources, NewGenerator(feed, n, seed+int64(i), now))
	}
	return sources
}
