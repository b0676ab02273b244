package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/leadscout/linkedin-mcp/internal/config"
	"github.com/leadscout/linkedin-mcp/internal/secrets"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [<email>]",
	Short: "Store LinkedIn credentials in the OS keyring",
	Long: `Stores the LinkedIn account password in the OS keyring.

The email argument is optional when LINKEDIN_EMAIL is set or the account
email is present in the config file. The password is read from the
terminal without echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	email := cfg.Auth.Email
	if len(args) == 1 {
		email = strings.TrimSpace(args[0])
	}
	if email == "" {
		return fmt.Errorf("no account email: pass one as an argument or set LINKEDIN_EMAIL")
	}

	if !isTerminal(os.Stdin) {
		return fmt.Errorf("login requires an interactive terminal")
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", email)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(password) == 0 {
		return fmt.Errorf("empty password")
	}

	if err := secrets.SetPassword(email, string(password)); err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("Stored credentials for %s\n", email)
	}
	return nil
}
