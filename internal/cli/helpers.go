package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/leadscout/linkedin-mcp/internal/config"
	"github.com/leadscout/linkedin-mcp/internal/errors"
	"github.com/leadscout/linkedin-mcp/internal/linkedin"
	"github.com/leadscout/linkedin-mcp/internal/prospect"
	"github.com/leadscout/linkedin-mcp/internal/secrets"
	"golang.org/x/term"
)

// newService loads configuration, resolves credentials, and builds the
// prospecting service. The keyring is consulted when no password is set
// in the environment or config file.
func newService() (*prospect.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Auth.Password == "" && cfg.Auth.Email != "" {
		if pw, err := secrets.GetPassword(cfg.Auth.Email); err == nil {
			cfg.Auth.Password = pw
		}
	}

	client, err := linkedin.New(cfg.ClientOptions())
	if err != nil {
		return nil, err
	}

	return prospect.NewServiceWithDefaults(client, cfg.ServiceDefaults()), nil
}

// outputJSON marshals and prints JSON to stdout.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// isTerminal checks if the given file descriptor is a TTY.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// getExitCode maps error codes to CLI exit codes.
func getExitCode(err error) int {
	if err == nil {
		return 0
	}

	code := errors.Code(err)
	switch code {
	case errors.CodeAuthFailed, errors.CodeChallengeRequired, errors.CodeSessionExpired:
		return 3 // Authentication
	case errors.CodeRateLimited:
		return 4 // Throttled upstream
	case errors.CodeNotFound:
		return 5 // Entity not found
	case "":
		// Not a linkedin-mcp error - could be usage error
		return 1 // General error
	default:
		return 1 // General error
	}
}

// printError prints an error to stderr with appropriate formatting.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
