package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/leadscout/linkedin-mcp/internal/prospect"
	"github.com/spf13/cobra"
)

var (
	companiesFlagIndustry string
	companiesFlagLocation string
	companiesFlagLimit    int
)

var companiesCmd = &cobra.Command{
	Use:   "companies <keywords>",
	Short: "Search companies",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanies,
}

func init() {
	companiesCmd.Flags().StringVar(&companiesFlagIndustry, "industry", "", "Industry filter")
	companiesCmd.Flags().StringVar(&companiesFlagLocation, "location", "", "Location filter")
	companiesCmd.Flags().IntVarP(&companiesFlagLimit, "limit", "n", 0, "Maximum number of results")
}

func runCompanies(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	companies, err := svc.SearchCompanies(cmd.Context(), prospect.SearchCompaniesParams{
		Keywords: args[0],
		Industry: companiesFlagIndustry,
		Location: companiesFlagLocation,
		Limit:    companiesFlagLimit,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(companies)
	}

	if len(companies) == 0 {
		if !flagQuiet {
			fmt.Println("No companies found")
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tINDUSTRY\tSIZE\tLOCATION")
	for _, c := range companies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", c.ID, c.Name, c.Industry, c.Size, c.Location)
	}
	w.Flush()
	return nil
}
