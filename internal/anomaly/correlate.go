package anomaly

import (
	"time"

	"github.com/willf/bloom"

	"threatboard/internal/common"
	"threatboard/internal/intel"
)

// correlationWindow bounds how far back critical intel is considered
// relevant to a live anomaly.
const correlationWindow = 7 * 24 * time.Hour

// Correlator matches anomaly source hosts against the values of
// critical threat records seen inside the correlation window. A bloom
// filter answers the common "definitely not listed" case cheaply; an
// exact set confirms hits so false positives never surface.
type Correlator struct {
	filter *bloom.BloomFilter
	exact  map[string]struct{}
}

// NewCorrelator indexes the recent critical records of the dataset.
func NewCorrelator(records []intel.ThreatRecord, now time.Time) *Correlator {
	c := &Correlator{
		filter: bloom.New(100000, 5),
		exact:  make(map[string]struct{}),
	}
	cutoff := now.Add(-correlationWindow)
	for _, r := range records {
		if r.Severity != common.SeverityCritical || r.Timestamp.Before(cutoff) {
			continue
		}
		c.filter.Add([]byte(r.Value))
		c.exact[r.Value] = struct{}{}
	}
	return c
}

// Match reports whether the host appears among recent critical IOC
// values.
func (c *Correlator) Match(host string) bool {
	if !c.filter.Test([]byte(host)) {
		return false
	}
	_, ok := c.exact[host]
	return ok
}

// Annotate returns a copy of points with Correlated set where the
// source host matches. The input slice is left untouched.
func (c *Correlator) Annotate(points []Point) []Point {
	out := append([]Point(nil), points...)
	for i := range out {
		out[i].Correlated = c.Match(out[i].SourceHost)
	}
	return out
}
