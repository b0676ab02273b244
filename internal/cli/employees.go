package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/leadscout/linkedin-mcp/internal/prospect"
	"github.com/spf13/cobra"
)

var (
	employeesFlagTitle          string
	employeesFlagDecisionMakers bool
	employeesFlagLimit          int
)

var employeesCmd = &cobra.Command{
	Use:   "employees <company-id>",
	Short: "Find employees of a company",
	Long: `Finds employees of a company, optionally filtered by job title.

With --decision-makers, searches for common leadership titles instead of
a single title filter.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmployees,
}

func init() {
	employeesCmd.Flags().StringVar(&employeesFlagTitle, "title", "", "Job title filter")
	employeesCmd.Flags().BoolVar(&employeesFlagDecisionMakers, "decision-makers", false, "Search leadership titles")
	employeesCmd.Flags().IntVarP(&employeesFlagLimit, "limit", "n", 0, "Maximum number of results")
}

func runEmployees(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	var people []prospect.PersonSummary
	if employeesFlagDecisionMakers {
		people, err = svc.FindDecisionMakers(cmd.Context(), args[0], nil, employeesFlagLimit)
	} else {
		people, err = svc.SearchCompanyEmployees(cmd.Context(), args[0], employeesFlagTitle, employeesFlagLimit)
	}
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(people)
	}

	if len(people) == 0 {
		if !flagQuiet {
			fmt.Println("No people found")
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTITLE\tLOCATION")
	for _, p := range people {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Title, p.Location)
	}
	w.Flush()
	return nil
}
