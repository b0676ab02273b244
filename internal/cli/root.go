package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set via ldflags during build
	Version = "dev"
	// Commit is set via ldflags during build
	Commit = "unknown"

	// Global flags
	flagJSON  bool
	flagQuiet bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linkedin-mcp",
	Short: "LinkedIn sales prospecting over MCP",
	Long: `linkedin-mcp exposes LinkedIn search, profile, and company data as
sales-prospecting tools over the Model Context Protocol.

It provides both CLI and MCP server interfaces for human and AI agent use.
Authentication uses the LINKEDIN_EMAIL and LINKEDIN_PASSWORD environment
variables, or a password stored in the OS keyring via 'linkedin-mcp login'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
		os.Exit(getExitCode(err))
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")

	// Add all subcommands
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(peopleCmd)
	rootCmd.AddCommand(companiesCmd)
	rootCmd.AddCommand(companyCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// GetVersion returns the version string
func GetVersion() string {
	if Commit != "unknown" {
		return fmt.Sprintf("%s (%s)", Version, Commit[:7])
	}
	return Version
}
