package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir returns the base data directory for linkedin-mcp.
// It follows the XDG Base Directory Specification:
// - $LINKEDIN_MCP_DATA_DIR (full override)
// - $XDG_DATA_HOME/linkedin-mcp
// - ~/.local/share/linkedin-mcp (fallback)
func DataDir() (string, error) {
	// Check for full override
	if dir := os.Getenv("LINKEDIN_MCP_DATA_DIR"); dir != "" {
		return dir, nil
	}

	// Check XDG_DATA_HOME
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "linkedin-mcp"), nil
	}

	// Fallback to ~/.local/share/linkedin-mcp
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "linkedin-mcp"), nil
}

// ConfigPath returns the path to the config.yaml file in the data directory.
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", fmt.Errorf("failed to get data directory: %w", err)
	}
	return filepath.Join(dataDir, "config.yaml"), nil
}

// SessionPath returns the path to the cached session cookie file.
func SessionPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", fmt.Errorf("failed to get data directory: %w", err)
	}
	return filepath.Join(dataDir, "session.json"), nil
}
