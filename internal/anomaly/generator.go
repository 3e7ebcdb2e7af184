package anomaly

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// profile describes the baseline and anomaly distributions of one
// metric. cap of zero means uncapped.
type profile struct {
	name         string
	mean, stddev float64
	anomalyProb  float64
	anomalyMean  float64
	anomalyStdev float64
	cap          float64
}

var profiles = []profile{
	{name: MetricLoginFailures, mean: 5, stddev: 2, anomalyProb: 0.03, anomalyMean: 25, anomalyStdev: 5},
	{name: MetricEgressTraffic, mean: 100, stddev: 20, anomalyProb: 0.02, anomalyMean: 500, anomalyStdev: 50},
	{name: MetricCPUUtilization, mean: 30, stddev: 10, anomalyProb: 0.04, anomalyMean: 90, anomalyStdev: 5, cap: 100},
}

var defaultHosts = []string{
	"web-01.internal", "web-02.internal", "db-01.internal",
	"vpn-gw.internal", "mail-01.internal",
}

// Generator synthesizes metric time series with injected anomalies.
type Generator struct {
	days   int
	perDay int
	rng    *rand.Rand
	hosts  []string
}

// NewGenerator builds a generator covering the trailing days at
// perDay samples per metric per day. Negative inputs clamp to zero.
// extraHosts widen the built-in source host pool; passing IOC values
// from the intel dataset makes correlation observable in demo data.
func NewGenerator(days, perDay int, seed int64, extraHosts []string) *Generator {
	if days < 0 {
		days = 0
	}
	if perDay < 0 {
		perDay = 0
	}
	hosts := append(append([]string(nil), defaultHosts...), extraHosts...)
	return &Generator{
		days:   days,
		perDay: perDay,
		rng:    rand.New(rand.NewSource(seed)),
		hosts:  hosts,
	}
}

// Generate produces the full series for all metrics, ordered by
// timestamp ascending.
func (g *Generator) Generate(now time.Time) []Point {
	steps := g.days * g.perDay
	if steps == 0 {
		return []Point{}
	}
	span := time.Duration(g.days) * 24 * time.Hour
	increment := span / time.Duration(steps)
	base := now.Add(-span)

	points := make([]Point, 0, steps*len(profiles))
	for i := 0; i < steps; i++ {
		stepTime := base.Add(time.Duration(i) * increment)
		for _, p := range profiles {
			jitter := time.Duration(g.rng.Intn(21)-10) * time.Minute
			points = append(points, g.sample(p, stepTime.Add(jitter)))
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
	return points
}

func (g *Generator) sample(p profile, ts time.Time) Point {
	value := g.rng.NormFloat64()*p.stddev + p.mean
	isAnomaly := false
	if g.rng.Float64() < p.anomalyProb {
		value = g.rng.NormFloat64()*p.anomalyStdev + p.anomalyMean
		isAnomaly = true
	}
	if value < 0 {
		value = 0
	}
	if p.cap > 0 && value > p.cap {
		value = p.cap
	}
	return Point{
		Timestamp:  ts,
		Metric:     p.name,
		Value:      math.Round(value*100) / 100,
		SourceHost: g.hosts[g.rng.Intn(len(g.hosts))],
		IsAnomaly:  isAnomaly,
	}
}
