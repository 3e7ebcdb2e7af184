package query

import (
	"sort"
	"strings"

	"threatboard/internal/common"
	"threatboard/internal/intel"
)

// Filter holds the user-selected predicates. Empty selections pass
// everything, so the zero value filters nothing.
type Filter struct {
	Severities map[common.Severity]struct{}
	IOCTypes   map[common.IOCType]struct{}
	Search     string
}

// ParseFilter builds a Filter from raw string inputs. Unknown enum
// values are dropped rather than rejected.
func ParseFilter(severities, iocTypes []string, search string) Filter {
	f := Filter{Search: strings.TrimSpace(search)}
	for _, raw := range severities {
		if s, ok := common.ParseSeverity(raw); ok {
			if f.Severities == nil {
				f.Severities = make(map[common.Severity]struct{})
			}
			f.Severities[s] = struct{}{}
		}
	}
	for _, raw := range iocTypes {
		if t, ok := common.ParseIOCType(raw); ok {
			if f.IOCTypes == nil {
				f.IOCTypes = make(map[common.IOCType]struct{})
			}
			f.IOCTypes[t] = struct{}{}
		}
	}
	return f
}

// Matches reports whether a single record satisfies the filter.
func (f Filter) Matches(r intel.ThreatRecord) bool {
	if len(f.Severities) > 0 {
		if _, ok := f.Severities[r.Severity]; !ok {
			return false
		}
	}
	if len(f.IOCTypes) > 0 {
		if _, ok := f.IOCTypes[r.IOCType]; !ok {
			return false
		}
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Value), needle) &&
			!strings.Contains(strings.ToLower(r.Description), needle) {
			return false
		}
	}
	return true
}

// Apply returns the subsequence of records satisfying the filter,
// preserving input order. The input is never mutated.
func Apply(records []intel.ThreatRecord, f Filter) []intel.ThreatRecord {
	out := make([]intel.ThreatRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Sort keys accepted by SortRecords.
const (
	SortTimestamp = "timestamp"
	SortSeverity  = "severity"
	SortIOCType   = "ioc_type"
	SortValue     = "value"
)

// SortRecords returns a sorted copy of records. Unknown keys fall back
// to timestamp. The sort is stable, so equal keys keep their relative
// order.
func SortRecords(records []intel.ThreatRecord, key string, descending bool) []intel.ThreatRecord {
	out := append([]intel.ThreatRecord(nil), records...)
	var less func(a, b intel.ThreatRecord) bool
	switch key {
	case SortSeverity:
		less = func(a, b intel.ThreatRecord) bool { return a.Severity.Rank() < b.Severity.Rank() }
	case SortIOCType:
		less = func(a, b intel.ThreatRecord) bool { return a.IOCType < b.IOCType }
	case SortValue:
		less = func(a, b intel.ThreatRecord) bool { return a.Value < b.Value }
	default:
		less = func(a, b intel.ThreatRecord) bool { return a.Timestamp.Before(b.Timestamp) }
	}
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
