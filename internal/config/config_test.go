package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("CATALOG_DB_PATH", "")
	t.Setenv("DEALER_ID", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Catalog.DBPath != "./paintquote.db" {
		t.Errorf("expected default db path, got %q", cfg.Catalog.DBPath)
	}
	if cfg.Catalog.DealerID != "default" {
		t.Errorf("expected default dealer, got %q", cfg.Catalog.DealerID)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CATALOG_DB_PATH", "/tmp/cat.db")
	t.Setenv("DEALER_ID", "acme")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "9090" || cfg.Catalog.DBPath != "/tmp/cat.db" || cfg.Catalog.DealerID != "acme" {
		t.Errorf("environment not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure for empty config")
	}

	var nilCfg *Config
	if err := nilCfg.Validate(); err == nil {
		t.Error("expected validation failure for nil config")
	}
}
