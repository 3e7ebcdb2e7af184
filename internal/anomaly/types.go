package anomaly

import "time"

// Point is one sample of a monitored system metric. IsAnomaly marks
// samples drawn from the injected anomaly distribution; Correlated
// marks samples whose source host matches recent critical intel.
type Point struct {
	Timestamp  time.Time `json:"timestamp"`
	Metric     string    `json:"metric"`
	Value      float64   `json:"value"`
	SourceHost string    `json:"source_host"`
	IsAnomaly  bool      `json:"is_anomaly"`
	Correlated bool      `json:"correlated,omitempty"`
}

// Metric names of the monitored series.
const (
	MetricLoginFailures  = "login_failures"
	MetricEgressTraffic  = "egress_traffic_mb"
	MetricCPUUtilization = "cpu_utilization_percent"
)

// Metrics lists all monitored metric names.
func Metrics() []string {
	return []string{MetricLoginFailures, MetricEgressTraffic, MetricCPUUtilization}
}
