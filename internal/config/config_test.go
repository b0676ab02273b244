package config

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestEnvironment points the data directory at a temp dir and
// clears the credential variables.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("LINKEDIN_MCP_DATA_DIR", tempDir)
	t.Setenv("LINKEDIN_EMAIL", "")
	t.Setenv("LINKEDIN_PASSWORD", "")

	return tempDir
}

func TestDataDir_Override(t *testing.T) {
	tempDir := setupTestEnvironment(t)

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir() failed: %v", err)
	}
	if dir != tempDir {
		t.Errorf("DataDir() = %q, want %q", dir, tempDir)
	}
}

func TestDataDir_XDG(t *testing.T) {
	t.Setenv("LINKEDIN_MCP_DATA_DIR", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir() failed: %v", err)
	}
	want := filepath.Join("/tmp/xdg-data", "linkedin-mcp")
	if dir != want {
		t.Errorf("DataDir() = %q, want %q", dir, want)
	}
}

func TestConfigPath(t *testing.T) {
	tempDir := setupTestEnvironment(t)

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() failed: %v", err)
	}
	want := filepath.Join(tempDir, "config.yaml")
	if path != want {
		t.Errorf("ConfigPath() = %q, want %q", path, want)
	}
}

func TestSessionPath(t *testing.T) {
	tempDir := setupTestEnvironment(t)

	path, err := SessionPath()
	if err != nil {
		t.Fatalf("SessionPath() failed: %v", err)
	}
	want := filepath.Join(tempDir, "session.json")
	if path != want {
		t.Errorf("SessionPath() = %q, want %q", path, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setupTestEnvironment(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Client.BaseURL != "https://www.linkedin.com/voyager/api" {
		t.Errorf("BaseURL = %q, want default", cfg.Client.BaseURL)
	}
	if cfg.Client.RequestsPerSecond != 1.0 {
		t.Errorf("RequestsPerSecond = %v, want 1.0", cfg.Client.RequestsPerSecond)
	}
	if cfg.Defaults.SearchLimit != 10 {
		t.Errorf("SearchLimit = %d, want 10", cfg.Defaults.SearchLimit)
	}
	if len(cfg.Defaults.DecisionMakerTitles) == 0 {
		t.Error("expected default decision maker titles")
	}
}

func TestLoad_FromFile(t *testing.T) {
	tempDir := setupTestEnvironment(t)

	configYAML := `auth:
  email: file@example.com
client:
  requests_per_second: 0.5
  timeout_seconds: 10
defaults:
  search_limit: 25
`
	if err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Auth.Email != "file@example.com" {
		t.Errorf("Email = %q, want %q", cfg.Auth.Email, "file@example.com")
	}
	if cfg.Client.RequestsPerSecond != 0.5 {
		t.Errorf("RequestsPerSecond = %v, want 0.5", cfg.Client.RequestsPerSecond)
	}
	if cfg.Defaults.SearchLimit != 25 {
		t.Errorf("SearchLimit = %d, want 25", cfg.Defaults.SearchLimit)
	}
	// Unset file fields keep their defaults
	if cfg.Client.BaseURL != "https://www.linkedin.com/voyager/api" {
		t.Errorf("BaseURL = %q, want default", cfg.Client.BaseURL)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	tempDir := setupTestEnvironment(t)

	if err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte("{not yaml"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setupTestEnvironment(t)
	t.Setenv("LINKEDIN_EMAIL", "env@example.com")
	t.Setenv("LINKEDIN_PASSWORD", "hunter2")
	t.Setenv("LINKEDIN_MCP_BASE_URL", "http://localhost:8080/voyager/api")
	t.Setenv("LINKEDIN_MCP_REQUESTS_PER_SECOND", "5")
	t.Setenv("LINKEDIN_MCP_SEARCH_LIMIT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Auth.Email != "env@example.com" {
		t.Errorf("Email = %q, want env value", cfg.Auth.Email)
	}
	if cfg.Auth.Password != "hunter2" {
		t.Errorf("Password = %q, want env value", cfg.Auth.Password)
	}
	if cfg.Client.BaseURL != "http://localhost:8080/voyager/api" {
		t.Errorf("BaseURL = %q, want env value", cfg.Client.BaseURL)
	}
	if cfg.Client.RequestsPerSecond != 5 {
		t.Errorf("RequestsPerSecond = %v, want 5", cfg.Client.RequestsPerSecond)
	}
	if cfg.Defaults.SearchLimit != 3 {
		t.Errorf("SearchLimit = %d, want 3", cfg.Defaults.SearchLimit)
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	setupTestEnvironment(t)
	t.Setenv("LINKEDIN_MCP_REQUESTS_PER_SECOND", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on unparseable rate")
	}
}

func TestClientOptions(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	t.Setenv("LINKEDIN_EMAIL", "env@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	opts := cfg.ClientOptions()
	if opts.Email != "env@example.com" {
		t.Errorf("Email = %q, want env value", opts.Email)
	}
	if opts.BaseURL != cfg.Client.BaseURL {
		t.Errorf("BaseURL = %q, want %q", opts.BaseURL, cfg.Client.BaseURL)
	}
	want := filepath.Join(tempDir, "session.json")
	if opts.SessionPath != want {
		t.Errorf("SessionPath = %q, want %q", opts.SessionPath, want)
	}
	if opts.Timeout.Seconds() != 30 {
		t.Errorf("Timeout = %v, want 30s", opts.Timeout)
	}
}

func TestServiceDefaults(t *testing.T) {
	setupTestEnvironment(t)
	t.Setenv("LINKEDIN_MCP_SEARCH_LIMIT", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	defaults := cfg.ServiceDefaults()
	if defaults.SearchLimit != 2 {
		t.Errorf("SearchLimit = %d, want env override 2", defaults.SearchLimit)
	}
	if defaults.FeedLimit != 10 {
		t.Errorf("FeedLimit = %d, want 10", defaults.FeedLimit)
	}
	if len(defaults.DecisionMakerTitles) == 0 {
		t.Error("DecisionMakerTitles should carry the built-in list")
	}
}
