package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	profileFlagAnalyze  bool
	profileFlagKeywords []string
)

var profileCmd = &cobra.Command{
	Use:   "profile <profile-id>",
	Short: "Show profile details",
	Long: `Shows detailed information about a member profile, including
experience, education, and skills.

With --analyze, scores the profile for sales fit instead: decision-making
authority and interest in the given service keywords.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().BoolVar(&profileFlagAnalyze, "analyze", false, "Score the profile for sales fit")
	profileCmd.Flags().StringSliceVar(&profileFlagKeywords, "keywords", nil, "Service keywords for --analyze")
}

func runProfile(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	if profileFlagAnalyze {
		analysis, err := svc.AnalyzeProspectProfile(cmd.Context(), args[0], profileFlagKeywords)
		if err != nil {
			return err
		}
		if flagJSON {
			return outputJSON(analysis)
		}
		fmt.Printf("Name:        %s\n", analysis.Name)
		fmt.Printf("Title:       %s at %s\n", analysis.CurrentTitle, analysis.CurrentCompany)
		fmt.Printf("Decision maker: %v\n", analysis.IsDecisionMaker)
		fmt.Printf("Opportunity: %s (%d)\n", analysis.OpportunityLevel, analysis.OpportunityScore)
		if len(analysis.ServiceInterests) > 0 {
			fmt.Printf("Interests:   %s\n", strings.Join(analysis.ServiceInterests, ", "))
		}
		return nil
	}

	details, err := svc.GetProfileDetails(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(details)
	}

	fmt.Printf("Name:     %s\n", details.Name)
	fmt.Printf("Headline: %s\n", details.Headline)
	fmt.Printf("Location: %s\n", details.Location)
	if len(details.Skills) > 0 {
		fmt.Printf("Skills:   %s\n", strings.Join(details.Skills, ", "))
	}
	if len(details.Experience) > 0 {
		fmt.Println("\nExperience:")
		for _, e := range details.Experience {
			fmt.Printf("  %s, %s", e.Title, e.Company)
			if e.DateRange != "" {
				fmt.Printf(" (%s)", e.DateRange)
			}
			fmt.Println()
		}
	}
	if len(details.Education) > 0 {
		fmt.Println("\nEducation:")
		for _, e := range details.Education {
			fmt.Printf("  %s", e.School)
			if e.Degree != "" {
				fmt.Printf(", %s", e.Degree)
			}
			fmt.Println()
		}
	}
	return nil
}
