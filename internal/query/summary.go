package query

import (
	"sort"

	"threatboard/internal/anomaly"
	"threatboard/internal/common"
	"threatboard/internal/intel"
)

// Summary holds the dashboard headline counters. Anomaly counters are
// computed over the full series and are unaffected by threat filters.
type Summary struct {
	Total      int `json:"total"`
	Critical   int `json:"critical"`
	High       int `json:"high"`
	Elevated   int `json:"elevated"`
	Anomalies  int `json:"anomalies"`
	Correlated int `json:"correlated"`
}

// Summarize computes the headline counters from a record collection
// and the full anomaly series.
func Summarize(records []intel.ThreatRecord, points []anomaly.Point) Summary {
	var s Summary
	s.Total = len(records)
	for _, r := range records {
		switch r.Severity {
		case common.SeverityCritical:
			s.Critical++
		case common.SeverityHigh:
			s.High++
		}
	}
	s.Elevated = s.Critical + s.High
	for _, p := range points {
		if p.IsAnomaly {
			s.Anomalies++
		}
		if p.Correlated {
			s.Correlated++
		}
	}
	return s
}

// HeatmapRow counts records per severity for one calendar day.
type HeatmapRow struct {
	Date   string                  `json:"date"`
	Counts map[common.Severity]int `json:"counts"`
}

// Heatmap buckets records by UTC day and severity, oldest day first.
// Days without records are omitted.
func Heatmap(records []intel.ThreatRecord) []HeatmapRow {
	byDay := make(map[string]map[common.Severity]int)
	for _, r := range records {
		day := r.Timestamp.UTC().Format("2006-01-02")
		if byDay[day] == nil {
			byDay[day] = make(map[common.Severity]int)
		}
		byDay[day][r.Severity]++
	}
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	rows := make([]HeatmapRow, 0, len(days))
	for _, day := range days {
		rows = append(rows, HeatmapRow{Date: day, Counts: byDay[day]})
	}
	return rows
}
