package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.StorageBackend != BackendFile {
		t.Fatalf("expected file backend by default, got %s", cfg.StorageBackend)
	}
	if cfg.DataFile != "data/patients.json" {
		t.Fatalf("expected default data file, got %s", cfg.DataFile)
	}
	if cfg.AdminToken != "" {
		t.Fatalf("expected admin token empty by default, got %s", cfg.AdminToken)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", " S3 ")
	t.Setenv("STORAGE_S3_BUCKET", "intake-bucket")
	t.Setenv("ADMIN_TOKEN", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("METRICS_ENABLED", "false")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.StorageBackend != BackendS3 {
		t.Fatalf("expected s3 backend, got %s", cfg.StorageBackend)
	}
	if cfg.S3Bucket != "intake-bucket" {
		t.Fatalf("expected bucket override, got %s", cfg.S3Bucket)
	}
	if cfg.AdminToken != "secret" {
		t.Fatalf("expected admin token override")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("expected two trimmed origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.MetricsEnabled {
		t.Fatalf("expected metrics disabled")
	}
}
