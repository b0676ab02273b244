// Package prospect composes the LinkedIn client into the sales
// prospecting operations exposed as tools. Every operation forwards its
// parameters to the client, reshapes the response, and truncates result
// lists to the caller's limit. No state is kept between calls.
package prospect

import (
	"fmt"
	"strings"

	"github.com/leadscout/linkedin-mcp/internal/linkedin"
)

// Default title and keyword lists applied when a caller omits them.
var (
	// DefaultDecisionMakerTitles seed the decision-maker search when no
	// titles are given.
	DefaultDecisionMakerTitles = []string{"CEO", "CTO", "CIO", "Director", "VP", "Head", "Manager"}

	// defaultLeadTitles are the narrower titles used while enriching
	// company leads, kept short to bound the number of upstream calls.
	defaultLeadTitles = []string{"CTO", "CIO", "IT Director", "VP of Technology", "Head of IT"}

	// defaultServiceKeywords approximate an IT services portfolio for
	// profile analysis when the caller does not supply their own.
	defaultServiceKeywords = []string{
		"cloud", "migration", "digital transformation", "infrastructure", "security",
		"automation", "devops", "ai", "machine learning", "data analytics", "integration",
		"erp", "crm", "software development", "consulting", "it services",
	}

	// decisionMakerTitleWords score whether a current title implies
	// purchasing authority.
	decisionMakerTitleWords = []string{"cto", "cio", "vp", "director", "chief", "head", "lead", "senior", "manager"}
)

// Defaults are the fallback values applied when a caller omits a
// parameter. Zero or empty fields fall back to the built-in values.
type Defaults struct {
	SearchLimit         int
	FeedLimit           int
	DecisionMakerTitles []string
}

// Service implements the prospecting operations over a LinkedIn client.
type Service struct {
	li       linkedin.API
	defaults Defaults
}

// NewService creates a Service backed by the given client, with the
// built-in defaults.
func NewService(li linkedin.API) *Service {
	return NewServiceWithDefaults(li, Defaults{})
}

// NewServiceWithDefaults creates a Service with configured fallback
// values for omitted tool parameters.
func NewServiceWithDefaults(li linkedin.API, defaults Defaults) *Service {
	if defaults.SearchLimit <= 0 {
		defaults.SearchLimit = 10
	}
	if defaults.FeedLimit <= 0 {
		defaults.FeedLimit = 10
	}
	if len(defaults.DecisionMakerTitles) == 0 {
		defaults.DecisionMakerTitles = DefaultDecisionMakerTitles
	}
	return &Service{li: li, defaults: defaults}
}

// profileURL builds the public URL for a member profile.
func profileURL(publicID string) string {
	return "https://www.linkedin.com/in/" + publicID
}

// companyURL builds the public URL for a company page.
func companyURL(companyID string) string {
	return "https://www.linkedin.com/company/" + companyID
}

// fullName joins first and last name, tolerating either being empty.
func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// firstIndustry returns the primary industry of a company, if any.
func firstIndustry(c linkedin.Company) string {
	if len(c.Industries) > 0 {
		return c.Industries[0]
	}
	return ""
}

// hqCountry returns the headquarter country of a company, if known.
func hqCountry(c linkedin.Company) string {
	if c.Headquarter != nil {
		return c.Headquarter.Country
	}
	return ""
}

// hqLocation formats the headquarter as "City, Country".
func hqLocation(c linkedin.Company) string {
	if c.Headquarter == nil {
		return ""
	}
	parts := []string{}
	if c.Headquarter.City != "" {
		parts = append(parts, c.Headquarter.City)
	}
	if c.Headquarter.Country != "" {
		parts = append(parts, c.Headquarter.Country)
	}
	return strings.Join(parts, ", ")
}

// dateRange formats a Voyager time period as "2019 - 2023", with a nil
// end date rendered as "Present".
func dateRange(tp linkedin.TimePeriod) string {
	start := ""
	if tp.StartDate != nil && tp.StartDate.Year > 0 {
		start = fmt.Sprintf("%d", tp.StartDate.Year)
	}
	end := "Present"
	if tp.EndDate != nil {
		end = ""
		if tp.EndDate.Year > 0 {
			end = fmt.Sprintf("%d", tp.EndDate.Year)
		}
	}
	return start + " - " + end
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// currentPosition returns the experience entry with no end date, which
// Voyager lists first for active roles.
func currentPosition(p *linkedin.Profile) (company, title string) {
	for _, exp := range p.Experience {
		if exp.TimePeriod.EndDate == nil {
			return exp.CompanyName, exp.Title
		}
	}
	return "", ""
}

// normalizeLimit applies a default when the caller passes zero or less.
func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}

// truncateText shortens s to max runes, appending an ellipsis when cut.
func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
