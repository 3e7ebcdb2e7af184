package server

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("default http addr %q", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Fatalf("default metrics addr %q", cfg.MetricsAddr)
	}
	if cfg.RecordCount != 250 {
		t.Fatalf("default record count %d", cfg.RecordCount)
	}
	if cfg.AnomalyDays != 7 || cfg.PointsPerDay != 24 {
		t.Fatalf("default anomaly window %d/%d", cfg.AnomalyDays, cfg.PointsPerDay)
	}
	if cfg.Seed != 0 {
		t.Fatalf("default seed %d", cfg.Seed)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TB_HTTP_ADDR", ":7070")
	t.Setenv("TB_RECORD_COUNT", "40")
	t.Setenv("TB_SEED", "1234")
	cfg := LoadConfig()
	if cfg.HTTPAddr != ":7070" {
		t.Fatalf("http addr override not applied: %q", cfg.HTTPAddr)
	}
	if cfg.RecordCount != 40 {
		t.Fatalf("record count override not applied: %d", cfg.RecordCount)
	}
	if cfg.Seed != 1234 {
		t.Fatalf("seed override not applied: %d", cfg.Seed)
	}
}

func TestLoadConfigIgnoresBadInt(t *testing.T) {
	t.Setenv("TB_RECORD_COUNT", "many")
	if cfg := LoadConfig(); cfg.RecordCount != 250 {
		t.Fatalf("bad int should fall back to default, got %d", cfg.RecordCount)
	}
}
