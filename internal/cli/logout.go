package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/leadscout/linkedin-mcp/internal/config"
	"github.com/leadscout/linkedin-mcp/internal/secrets"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout [<email>]",
	Short: "Remove stored credentials and cached session",
	Long: `Removes the LinkedIn password from the OS keyring and deletes the
cached session cookies.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	email := cfg.Auth.Email
	if len(args) == 1 {
		email = strings.TrimSpace(args[0])
	}

	if email != "" {
		if err := secrets.DeletePassword(email); err != nil {
			return fmt.Errorf("failed to remove password: %w", err)
		}
	}

	sessionPath, err := config.SessionPath()
	if err == nil {
		if err := os.Remove(sessionPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove session cache: %w", err)
		}
	}

	if !flagQuiet {
		fmt.Println("Logged out")
	}
	return nil
}
