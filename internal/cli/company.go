package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	companyFlagUpdates bool
	companyFlagLimit   int
)

var companyCmd = &cobra.Command{
	Use:   "company <company-id>",
	Short: "Show company details or updates",
	Long: `Shows detailed information about a company identified by its LinkedIn
ID or universal name (e.g., "google").

With --updates, shows the company's recent page posts instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompany,
}

func init() {
	companyCmd.Flags().BoolVar(&companyFlagUpdates, "updates", false, "Show recent page posts instead of details")
	companyCmd.Flags().IntVarP(&companyFlagLimit, "limit", "n", 0, "Maximum number of updates")
}

func runCompany(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	if companyFlagUpdates {
		updates, err := svc.GetCompanyUpdates(cmd.Context(), args[0], companyFlagLimit)
		if err != nil {
			return err
		}
		if flagJSON {
			return outputJSON(updates)
		}
		if len(updates) == 0 {
			if !flagQuiet {
				fmt.Println("No updates")
			}
			return nil
		}
		for i, u := range updates {
			if i > 0 {
				fmt.Println("---")
			}
			fmt.Println(u.Content)
		}
		return nil
	}

	details, err := svc.GetCompanyDetails(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(details)
	}

	fmt.Printf("Name:      %s\n", details.Name)
	fmt.Printf("Industry:  %s\n", details.Industry)
	fmt.Printf("Location:  %s\n", details.Location)
	fmt.Printf("Size:      %d\n", details.Size)
	if details.Website != "" {
		fmt.Printf("Website:   %s\n", details.Website)
	}
	if details.Founded != 0 {
		fmt.Printf("Founded:   %d\n", details.Founded)
	}
	if len(details.Specialties) > 0 {
		fmt.Printf("Specialties: %s\n", strings.Join(details.Specialties, ", "))
	}
	if details.Description != "" {
		fmt.Printf("\n%s\n", details.Description)
	}
	return nil
}
