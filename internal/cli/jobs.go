package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/leadscout/linkedin-mcp/internal/prospect"
	"github.com/spf13/cobra"
)

var (
	jobsFlagLocation string
	jobsFlagLimit    int
	jobsFlagOffset   int
)

var jobsCmd = &cobra.Command{
	Use:   "jobs <keywords>",
	Short: "Search job postings",
	Long: `Searches LinkedIn job postings by keywords.

Each result is enriched with the posting description and the resolved
company name.`,
	Args: cobra.ExactArgs(1),
	RunE: runJobs,
}

func init() {
	jobsCmd.Flags().StringVar(&jobsFlagLocation, "location", "", "Location filter")
	jobsCmd.Flags().IntVarP(&jobsFlagLimit, "limit", "n", 0, "Maximum number of results")
	jobsCmd.Flags().IntVar(&jobsFlagOffset, "offset", 0, "Number of results to skip")
}

func runJobs(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	jobs, err := svc.SearchJobs(cmd.Context(), prospect.SearchJobsParams{
		Keywords: args[0],
		Location: jobsFlagLocation,
		Limit:    jobsFlagLimit,
		Offset:   jobsFlagOffset,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(jobs)
	}

	if len(jobs) == 0 {
		if !flagQuiet {
			fmt.Println("No jobs found")
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION")
	for _, job := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", job.ID, job.Title, job.Company, job.Location)
	}
	w.Flush()
	return nil
}
