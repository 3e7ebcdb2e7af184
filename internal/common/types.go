package common

// Severity classifies the importance of a threat record.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities lists all known severities in ascending order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Rank returns the ordinal position of the severity, low first.
// Unknown severities rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return 0
}

// Elevated reports whether the severity is high or critical.
func (s Severity) Elevated() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// ParseSeverity maps a string to a known severity. Unknown values
// return false so callers can drop them instead of failing.
func ParseSeverity(v string) (Severity, bool) {
	switch Severity(v) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return Severity(v), true
	}
	return "", false
}

// IOCType represents the kind of indicator a threat record carries.
type IOCType string

const (
	IOCIPAddress IOCType = "ip_address"
	IOCDomain    IOCType = "domain"
	IOCFileHash  IOCType = "file_hash"
	IOCURL       IOCType = "url"
)

// IOCTypes lists all known indicator types.
var IOCTypes = []IOCType{IOCIPAddress, IOCDomain, IOCFileHash, IOCURL}

// ParseIOCType maps a string to a known IOC type.
func ParseIOCType(v string) (IOCType, bool) {
	switch IOCType(v) {
	case IOCIPAddress, IOCDomain, IOCFileHash, IOCURL:
		return IOCType(v), true
	}
	return "", false
}
