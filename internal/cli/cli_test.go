package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leadscout/linkedin-mcp/internal/errors"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"auth failed", errors.AuthFailed("user@example.com"), 3},
		{"challenge required", errors.ChallengeRequired(), 3},
		{"session expired", errors.SessionExpired(), 3},
		{"rate limited", errors.RateLimited("/search/blended"), 4},
		{"not found", errors.NotFound("profile", "ghost"), 5},
		{"invalid params", errors.InvalidParams("bad limit"), 1},
		{"plain error", fmt.Errorf("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getExitCode(tt.err); got != tt.expected {
				t.Errorf("getExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestGetVersion(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() {
		Version, Commit = oldVersion, oldCommit
	})

	Version = "1.2.3"
	Commit = "unknown"
	if got := GetVersion(); got != "1.2.3" {
		t.Errorf("GetVersion() = %q, want %q", got, "1.2.3")
	}

	Commit = "abcdef1234567890"
	if got := GetVersion(); got != "1.2.3 (abcdef1)" {
		t.Errorf("GetVersion() = %q, want %q", got, "1.2.3 (abcdef1)")
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{
		"login", "logout", "feed", "jobs", "people", "companies",
		"company", "employees", "profile", "mcp", "version",
	}

	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing the %q subcommand", name)
		}
	}
}

func TestNewService_RequiresCredentials(t *testing.T) {
	t.Setenv("LINKEDIN_MCP_DATA_DIR", t.TempDir())
	t.Setenv("LINKEDIN_EMAIL", "")
	t.Setenv("LINKEDIN_PASSWORD", "")

	_, err := newService()
	if err == nil {
		t.Fatal("newService() should fail without credentials")
	}
	if !strings.Contains(err.Error(), "LINKEDIN_EMAIL") {
		t.Errorf("error = %q, want it to mention the credential variables", err.Error())
	}
}

func TestNewService_FromEnv(t *testing.T) {
	t.Setenv("LINKEDIN_MCP_DATA_DIR", t.TempDir())
	t.Setenv("LINKEDIN_EMAIL", "test@example.com")
	t.Setenv("LINKEDIN_PASSWORD", "secret")

	svc, err := newService()
	if err != nil {
		t.Fatalf("newService() failed: %v", err)
	}
	if svc == nil {
		t.Fatal("expected non-nil service")
	}
}
