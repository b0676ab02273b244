package prospect

import (
	"context"
	"strings"
	"time"

	"github.com/leadscout/linkedin-mcp/internal/errors"
	"github.com/leadscout/linkedin-mcp/internal/linkedin"
)

// LeadRecommendationsParams are the arguments of the lead tool.
type LeadRecommendationsParams struct {
	Industry     string
	CompanySize  string
	Technologies []string
	Location     string
	Limit        int
}

// GenerateLeadRecommendations finds companies matching the criteria and
// enriches each with decision makers and a technology-fit estimate. The
// per-company enrichment is best-effort; an upstream failure there
// degrades the lead instead of failing the tool.
func (s *Service) GenerateLeadRecommendations(ctx context.Context, params LeadRecommendationsParams) ([]Lead, error) {
	limit := normalizeLimit(params.Limit, 5)
	industry := params.Industry
	if industry == "" {
		industry = "Information Technology"
	}

	companies, err := s.li.SearchCompanies(ctx, linkedin.CompanySearchParams{
		Keywords: industry,
		Location: params.Location,
		Limit:    limit * 2,
	})
	if err != nil {
		return nil, err
	}

	if params.CompanySize != "" {
		companies = filterBySizeClass(companies, params.CompanySize)
	}
	if len(companies) > limit {
		companies = companies[:limit]
	}

	leads := make([]Lead, 0, len(companies))
	for _, company := range companies {
		lead := Lead{
			CompanyID:      company.ID,
			CompanyName:    company.Name,
			Industry:       firstIndustry(company),
			Location:       hqCountry(company),
			Size:           company.StaffCount,
			TechnologyFit:  "Unknown",
			DecisionMakers: s.topDecisionMakers(ctx, company.Name, 2),
			CompanyURL:     companyURL(company.ID),
		}
		if len(params.Technologies) > 0 {
			lead.TechnologyFit = s.technologyFit(ctx, company, params.Technologies)
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// topDecisionMakers collects up to max contacts across the default lead
// titles. Failures return whatever was collected so far.
func (s *Service) topDecisionMakers(ctx context.Context, companyName string, max int) []Contact {
	var contacts []Contact
	for _, title := range defaultLeadTitles[:2] {
		people, err := s.li.SearchPeople(ctx, linkedin.PeopleSearchParams{
			CompanyName: companyName,
			Title:       title,
			Limit:       max,
		})
		if err != nil {
			return contacts
		}
		for _, person := range people {
			contacts = append(contacts, Contact{
				Name:  fullName(person.FirstName, person.LastName),
				Title: person.Occupation,
				URL:   profileURL(person.PublicID),
			})
			if len(contacts) >= max {
				return contacts
			}
		}
	}
	return contacts
}

// technologyFit grades a company's exposure to the given technologies:
// high on a company update mention, medium on a matching job posting,
// low otherwise. Lookup failures leave the grade unknown.
func (s *Service) technologyFit(ctx context.Context, company linkedin.Company, technologies []string) string {
	updates, err := s.li.GetCompanyUpdates(ctx, company.ID, 5)
	if err != nil {
		return "Unknown"
	}

	var mentions []string
	for _, update := range updates {
		for _, tech := range technologies {
			if containsFold(update.Text, tech) && !containsString(mentions, tech) {
				mentions = append(mentions, tech)
			}
		}
	}
	if len(mentions) > 0 {
		return "High - Mentioned in company updates: " + strings.Join(mentions, ", ")
	}

	jobs, err := s.li.SearchJobs(ctx, linkedin.JobSearchParams{
		Keywords:    strings.Join(technologies, " "),
		CompanyName: company.Name,
		Limit:       5,
	})
	if err != nil {
		return "Unknown"
	}
	if len(jobs) > 0 {
		return "Medium - Company has job postings with relevant technologies"
	}
	return "Low - No direct mentions found"
}

// filterBySizeClass keeps companies whose staff count fits a named size
// class: small (1-50), medium (51-500), large (501+).
func filterBySizeClass(companies []linkedin.Company, class string) []linkedin.Company {
	var minSize, maxSize int
	switch strings.ToLower(class) {
	case "small":
		minSize, maxSize = 1, 50
	case "medium":
		minSize, maxSize = 51, 500
	case "large":
		minSize, maxSize = 501, 0
	default:
		return companies
	}

	var out []linkedin.Company
	for _, company := range companies {
		if company.StaffCount < minSize {
			continue
		}
		if maxSize > 0 && company.StaffCount > maxSize {
			continue
		}
		out = append(out, company)
	}
	return out
}

func containsString(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}

// TargetAccountsParams are the arguments of the target account tool.
type TargetAccountsParams struct {
	Industry            string
	Keywords            []string
	Location            string
	MinSize             int
	MaxSize             int
	TechnologyInterests []string
	Limit               int
}

// IdentifyTargetAccounts finds companies matching size and keyword
// criteria and scores each against the technology interests.
func (s *Service) IdentifyTargetAccounts(ctx context.Context, params TargetAccountsParams) ([]TargetAccount, error) {
	if params.Industry == "" {
		return nil, errors.InvalidParams("industry is required")
	}
	limit := normalizeLimit(params.Limit, s.defaults.SearchLimit)

	companies, err := s.li.SearchCompanies(ctx, linkedin.CompanySearchParams{
		Keywords: params.Industry,
		Location: params.Location,
		Limit:    limit * 3,
	})
	if err != nil {
		return nil, err
	}

	var filtered []linkedin.Company
	for _, company := range companies {
		if params.MinSize > 0 && company.StaffCount < params.MinSize {
			continue
		}
		if params.MaxSize > 0 && company.StaffCount > params.MaxSize {
			continue
		}
		if len(params.Keywords) > 0 {
			match := false
			for _, keyword := range params.Keywords {
				if containsFold(company.Description, keyword) {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		filtered = append(filtered, company)
		if len(filtered) >= limit {
			break
		}
	}

	accounts := make([]TargetAccount, 0, len(filtered))
	for _, company := range filtered {
		description := truncateText(company.Description, 200)

		techScore := 0
		var techMentions []string
		for _, tech := range params.TechnologyInterests {
			if containsFold(company.Description, tech) {
				techScore++
				techMentions = append(techMentions, tech)
			}
		}

		accounts = append(accounts, TargetAccount{
			CompanyID:      company.ID,
			CompanyName:    company.Name,
			Industry:       firstIndustry(company),
			Location:       hqCountry(company),
			Size:           company.StaffCount,
			Description:    description,
			TechScore:      techScore,
			TechMentions:   techMentions,
			DecisionMakers: s.topDecisionMakers(ctx, company.Name, 2),
			CompanyURL:     companyURL(company.ID),
		})
	}
	return accounts, nil
}

// FindCompaniesUsingTechnologiesParams are the arguments of the
// technology company tool.
type FindCompaniesUsingTechnologiesParams struct {
	Technologies []string
	Industry     string
	Location     string
	Limit        int
}

// FindCompaniesUsingTechnologies finds companies whose description
// mentions the given technologies, falling back to companies hiring for
// them when the description search comes up short.
func (s *Service) FindCompaniesUsingTechnologies(ctx context.Context, params FindCompaniesUsingTechnologiesParams) ([]TechCompany, error) {
	if len(params.Technologies) == 0 {
		return nil, errors.InvalidParams("technologies is required")
	}
	limit := normalizeLimit(params.Limit, s.defaults.SearchLimit)

	keywords := strings.Join(params.Technologies[:min(2, len(params.Technologies))], " ")
	companies, err := s.li.SearchCompanies(ctx, linkedin.CompanySearchParams{
		Keywords: keywords,
		Industry: params.Industry,
		Location: params.Location,
		Limit:    limit * 3,
	})
	if err != nil {
		return nil, err
	}

	var results []TechCompany
	seen := map[string]bool{}
	for _, company := range companies {
		if len(results) >= limit {
			break
		}

		var mentions []string
		for _, tech := range params.Technologies {
			if containsFold(company.Description, tech) {
				mentions = append(mentions, tech)
			}
		}
		if len(mentions) == 0 {
			continue
		}

		seen[company.ID] = true
		results = append(results, TechCompany{
			ID:                    company.ID,
			Name:                  company.Name,
			Industry:              firstIndustry(company),
			Location:              hqCountry(company),
			Size:                  company.StaffCount,
			TechnologiesMentioned: mentions,
			URL:                   companyURL(company.ID),
		})
	}

	// Fall back to job postings; a company hiring for a technology is
	// likely using it even when its description is silent.
	if len(results) < limit {
		remaining := limit - len(results)
		for _, tech := range params.Technologies {
			if len(results) >= limit {
				break
			}

			jobs, err := s.li.SearchJobs(ctx, linkedin.JobSearchParams{
				Keywords: tech,
				Limit:    remaining * 2,
			})
			if err != nil {
				break
			}

			for _, job := range jobs {
				if len(results) >= limit {
					break
				}
				posting, err := s.li.GetJob(ctx, job.ID)
				if err != nil {
					continue
				}
				if posting.CompanyID == "" || seen[posting.CompanyID] {
					continue
				}
				seen[posting.CompanyID] = true
				results = append(results, TechCompany{
					ID:                    posting.CompanyID,
					Name:                  posting.CompanyName,
					TechnologiesMentioned: []string{tech},
					URL:                   companyURL(posting.CompanyID),
					Source:                "job_posting",
				})
			}
		}
	}
	return results, nil
}

// FindRecentJobChangesParams are the arguments of the job change tool.
type FindRecentJobChangesParams struct {
	Industry      string
	TitleKeywords []string
	Location      string
	Limit         int
}

// FindRecentJobChanges finds people who moved to a new company within
// the last twelve months. Candidates whose profile lookup fails are
// skipped.
func (s *Service) FindRecentJobChanges(ctx context.Context, params FindRecentJobChangesParams) ([]JobChange, error) {
	limit := normalizeLimit(params.Limit, s.defaults.SearchLimit)
	cutoff := time.Now().UTC().AddDate(-1, 0, 0)

	searchParams := linkedin.PeopleSearchParams{
		Industry:     params.Industry,
		LocationName: params.Location,
		Limit:        limit * 3,
	}
	if len(params.TitleKeywords) > 0 {
		searchParams.Title = params.TitleKeywords[0]
	}

	people, err := s.li.SearchPeople(ctx, searchParams)
	if err != nil {
		return nil, err
	}

	var changes []JobChange
	for _, person := range people {
		if len(changes) >= limit {
			break
		}

		profile, err := s.li.GetProfile(ctx, person.PublicID)
		if err != nil {
			continue
		}
		if len(profile.Experience) < 2 {
			continue
		}

		current := profile.Experience[0]
		previous := profile.Experience[1]

		// Internal moves are not a sales signal.
		if strings.EqualFold(current.CompanyName, previous.CompanyName) {
			continue
		}

		if len(params.TitleKeywords) > 0 {
			match := false
			for _, keyword := range params.TitleKeywords {
				if containsFold(current.Title, keyword) {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}

		if !startedSince(current.TimePeriod.StartDate, cutoff) {
			continue
		}

		changes = append(changes, JobChange{
			ID:              person.PublicID,
			Name:            fullName(profile.FirstName, profile.LastName),
			CurrentTitle:    current.Title,
			CurrentCompany:  current.CompanyName,
			PreviousCompany: previous.CompanyName,
			Location:        profile.LocationName,
			URL:             profileURL(person.PublicID),
		})
	}
	return changes, nil
}

// startedSince reports whether a partial start date falls on or after
// the cutoff. Missing months count as January.
func startedSince(start *linkedin.Date, cutoff time.Time) bool {
	if start == nil || start.Year == 0 {
		return false
	}
	month := time.Month(start.Month)
	if month == 0 {
		month = time.January
	}
	started := time.Date(start.Year, month, 1, 0, 0, 0, 0, time.UTC)
	return !started.Before(cutoff)
}
