package server

import (
	"os"
	"strconv"
)

// Config holds server configuration.
type Config struct {
	HTTPAddr     string
	MetricsAddr  string
	RecordCount  int
	AnomalyDays  int
	PointsPerDay int
	Seed         int64
}

// LoadConfig reads environment variables and returns a Config.
func LoadConfig() *Config {
	return &Config{
		HTTPAddr:     getEnv("TB_HTTP_ADDR", ":8080"),
		MetricsAddr:  getEnv("TB_METRICS_ADDR", ":9090"),
		RecordCount:  getEnvInt("TB_RECORD_COUNT", 250),
		AnomalyDays:  getEnvInt("TB_ANOMALY_DAYS", 7),
		PointsPerDay: getEnvInt("TB_POINTS_PER_DAY", 24),
		Seed:         int64(getEnvInt("TB_SEED", 0)),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
