package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("Expected default server URL, got %q", cfg.ServerURL)
	}
	if cfg.RequestTimeoutSeconds != 60 {
		t.Errorf("Expected default timeout 60, got %d", cfg.RequestTimeoutSeconds)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got %q", cfg.LogLevel)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := &Config{
		ServerURL:             "http://analyzer.internal:9000",
		RequestTimeoutSeconds: 30,
		LogLevel:              "debug",
	}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.ServerURL != cfg.ServerURL {
		t.Errorf("Expected server URL %q, got %q", cfg.ServerURL, loaded.ServerURL)
	}
	if loaded.RequestTimeoutSeconds != cfg.RequestTimeoutSeconds {
		t.Errorf("Expected timeout %d, got %d", cfg.RequestTimeoutSeconds, loaded.RequestTimeoutSeconds)
	}
	if loaded.LogLevel != cfg.LogLevel {
		t.Errorf("Expected log level %q, got %q", cfg.LogLevel, loaded.LogLevel)
	}
}

func TestLoadFromPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"server_url":"http://example.com"}`), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.ServerURL != "http://example.com" {
		t.Errorf("Expected overridden server URL, got %q", cfg.ServerURL)
	}
	if cfg.RequestTimeoutSeconds != 60 {
		t.Errorf("Expected default timeout kept, got %d", cfg.RequestTimeoutSeconds)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "Valid config",
			cfg:  *DefaultConfig(),
		},
		{
			name:    "Empty server URL",
			cfg:     Config{RequestTimeoutSeconds: 60},
			wantErr: true,
		},
		{
			name:    "Relative server URL",
			cfg:     Config{ServerURL: "/upload", RequestTimeoutSeconds: 60},
			wantErr: true,
		},
		{
			name:    "Zero timeout",
			cfg:     Config{ServerURL: "http://localhost:8000"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvServerURL, "http://override:7000")
	t.Setenv(EnvTimeout, "15")
	t.Setenv(EnvLogLevel, "warn")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	if cfg.ServerURL != "http://override:7000" {
		t.Errorf("Expected env server URL, got %q", cfg.ServerURL)
	}
	if cfg.RequestTimeoutSeconds != 15 {
		t.Errorf("Expected env timeout 15, got %d", cfg.RequestTimeoutSeconds)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected env log level 'warn', got %q", cfg.LogLevel)
	}
}

func TestApplyEnvOverridesIgnoresBadTimeout(t *testing.T) {
	t.Setenv(EnvTimeout, "soon")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	if cfg.RequestTimeoutSeconds != 60 {
		t.Errorf("Expected default timeout kept for a non-numeric override, got %d", cfg.RequestTimeoutSeconds)
	}
}
