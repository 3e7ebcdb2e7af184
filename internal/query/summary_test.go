package query

import (
	"testing"
	"time"

	"threatboard/internal/anomaly"
	"threatboard/internal/common"
	"threatboard/internal/intel"
)

func TestSummarizeCounters(t *testing.T) {
	records := sampleRecords() // 2 critical, 1 high, 1 medium, 1 low
	points := []anomaly.Point{
		{IsAnomaly: true},
		{IsAnomaly: true, Correlated: true},
		{},
		{Correlated: true},
	}
	s := Summarize(records, points)
	if s.Total != 5 {
		t.Fatalf("total = %d, want 5", s.Total)
	}
	if s.Critical != 2 || s.High != 1 {
		t.Fatalf("critical/high = %d/%d, want 2/1", s.Critical, s.High)
	}
	if s.Elevated != 3 {
		t.Fatalf("elevated = %d, want 3", s.Elevated)
	}
	if s.Anomalies != 2 {
		t.Fatalf("anomalies = %d, want 2", s.Anomalies)
	}
	if s.Correlated != 2 {
		t.Fatalf("correlated = %d, want 2", s.Correlated)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.Total != 0 || s.Elevated != 0 || s.Anomalies != 0 {
		t.Fatalf("empty summary not zero: %+v", s)
	}
}

func TestAnomalyCountIndependentOfThreatFilter(t *testing.T) {
	records := sampleRecords()
	points := []anomaly.Point{{IsAnomaly: true}, {IsAnomaly: true}, {}}

	full := Summarize(records, points)
	filtered := Summarize(Apply(records, ParseFilter([]string{"critical"}, nil, "")), points)
	if full.Anomalies != filtered.Anomalies {
		t.Fatalf("anomaly count changed under threat filter: %d vs %d",
			full.Anomalies, filtered.Anomalies)
	}
	if filtered.Total != 2 || filtered.Elevated != 2 {
		t.Fatalf("filtered totals wrong: %+v", filtered)
	}
}

func TestHeatmapBuckets(t *testing.T) {
	day1 := time.Date(2026, time.August, 18, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.August, 19, 23, 30, 0, 0, time.UTC)
	records := []intel.ThreatRecord{
		{Timestamp: day2, Severity: common.SeverityCritical},
		{Timestamp: day1, Severity: common.SeverityCritical},
		{Timestamp: day1, Severity: common.SeverityLow},
		{Timestamp: day1.Add(time.Hour), Severity: common.SeverityCritical},
	}
	rows := Heatmap(records)
	if len(rows) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(rows))
	}
	if rows[0].Date != "2026-08-18" || rows[1].Date != "2026-08-19" {
		t.Fatalf("rows not ordered by date: %s, %s", rows[0].Date, rows[1].Date)
	}
	if rows[0].Counts[common.SeverityCritical] != 2 || rows[0].Counts[common.SeverityLow] != 1 {
		t.Fatalf("unexpected day1 counts: %v", rows[0].Counts)
	}
	if rows[1].Counts[common.SeverityCritical] != 1 {
		t.Fatalf("unexpected day2 counts: %v", rows[1].Counts)
	}
}

func TestHeatmapEmpty(t *testing.T) {
	if rows := Heatmap(nil); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
