package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/leadscout/linkedin-mcp/internal/prospect"
	"github.com/spf13/cobra"
)

var (
	peopleFlagKeywords string
	peopleFlagTitle    string
	peopleFlagCompany  string
	peopleFlagIndustry string
	peopleFlagLocation string
	peopleFlagSchool   string
	peopleFlagSkill    string
	peopleFlagSkills   []string
	peopleFlagLimit    int
)

var peopleCmd = &cobra.Command{
	Use:   "people [<keywords>]",
	Short: "Search member profiles",
	Long: `Searches LinkedIn member profiles by keywords, title, company, and
other criteria.

With --skills, candidates must hold every listed skill; the output then
includes the matched skills per person.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPeople,
}

func init() {
	peopleCmd.Flags().StringVar(&peopleFlagTitle, "title", "", "Job title filter")
	peopleCmd.Flags().StringVar(&peopleFlagCompany, "company", "", "Company name filter")
	peopleCmd.Flags().StringVar(&peopleFlagIndustry, "industry", "", "Industry filter")
	peopleCmd.Flags().StringVar(&peopleFlagLocation, "location", "", "Location filter")
	peopleCmd.Flags().StringVar(&peopleFlagSchool, "school", "", "Education institution filter")
	peopleCmd.Flags().StringVar(&peopleFlagSkill, "skill", "", "Require a specific skill")
	peopleCmd.Flags().StringSliceVar(&peopleFlagSkills, "skills", nil, "Require all of the given skills")
	peopleCmd.Flags().IntVarP(&peopleFlagLimit, "limit", "n", 0, "Maximum number of results")
}

func runPeople(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		peopleFlagKeywords = args[0]
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	if len(peopleFlagSkills) > 0 {
		matches, err := svc.SearchPeopleBySkills(cmd.Context(), prospect.SearchPeopleBySkillsParams{
			Skills:   peopleFlagSkills,
			Title:    peopleFlagTitle,
			Industry: peopleFlagIndustry,
			Location: peopleFlagLocation,
			Limit:    peopleFlagLimit,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return outputJSON(matches)
		}
		printPeopleTable(len(matches), func(w *tabwriter.Writer) {
			for _, m := range matches {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Title, m.Location)
			}
		})
		return nil
	}

	people, err := svc.SearchPeople(cmd.Context(), prospect.SearchPeopleParams{
		Keywords: peopleFlagKeywords,
		Title:    peopleFlagTitle,
		Company:  peopleFlagCompany,
		Industry: peopleFlagIndustry,
		Location: peopleFlagLocation,
		School:   peopleFlagSchool,
		Skill:    peopleFlagSkill,
		Limit:    peopleFlagLimit,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(people)
	}

	printPeopleTable(len(people), func(w *tabwriter.Writer) {
		for _, p := range people {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Title, p.Location)
		}
	})
	return nil
}

// printPeopleTable renders the shared people table layout.
func printPeopleTable(count int, rows func(w *tabwriter.Writer)) {
	if count == 0 {
		if !flagQuiet {
			fmt.Println("No people found")
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTITLE\tLOCATION")
	rows(w)
	w.Flush()
}
