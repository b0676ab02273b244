package prospect

import (
	"context"

	"github.com/leadscout/linkedin-mcp/internal/errors"
	"github.com/leadscout/linkedin-mcp/internal/linkedin"
)

// FeedPosts retrieves posts from the authenticated member's feed.
func (s *Service) FeedPosts(ctx context.Context, limit, offset int) ([]FeedPost, error) {
	limit = normalizeLimit(limit, s.defaults.FeedLimit)

	posts, err := s.li.GetFeedPosts(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	results := make([]FeedPost, 0, len(posts))
	for _, post := range posts {
		results = append(results, FeedPost{
			Author:   post.AuthorName,
			Content:  post.Text,
			PostedAt: post.PostedAt,
		})
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// SearchJobsParams are the arguments of the job search tool.
type SearchJobsParams struct {
	Keywords string
	Location string
	Limit    int
	Offset   int
}

// SearchJobs searches job postings and enriches each hit with the
// posting detail, which carries the description and resolved company.
func (s *Service) SearchJobs(ctx context.Context, params SearchJobsParams) ([]JobSummary, error) {
	limit := normalizeLimit(params.Limit, 3)

	jobs, err := s.li.SearchJobs(ctx, linkedin.JobSearchParams{
		Keywords: params.Keywords,
		Location: params.Location,
		Limit:    limit,
		Offset:   params.Offset,
	})
	if err != nil {
		return nil, err
	}

	var results []JobSummary
	for _, job := range jobs {
		if len(results) >= limit {
			break
		}
		detail, err := s.li.GetJob(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, JobSummary{
			ID:          detail.ID,
			Title:       detail.Title,
			Company:     detail.CompanyName,
			Location:    detail.FormattedLocation,
			Description: detail.Description,
		})
	}
	return results, nil
}

// SearchCompaniesParams are the arguments of the company search tool.
type SearchCompaniesParams struct {
	Keywords string
	Industry string
	Location string
	Limit    int
}

// SearchCompanies searches companies by keywords with optional industry
// and location filters.
func (s *Service) SearchCompanies(ctx context.Context, params SearchCompaniesParams) ([]CompanySummary, error) {
	limit := normalizeLimit(params.Limit, s.defaults.SearchLimit)

	companies, err := s.li.SearchCompanies(ctx, linkedin.CompanySearchParams{
		Keywords: params.Keywords,
		Industry: params.Industry,
		Location: params.Location,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]CompanySummary, 0, len(companies))
	for _, company := range companies {
		results = append(results, companySummary(company))
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func companySummary(c linkedin.Company) CompanySummary {
	return CompanySummary{
		ID:          c.ID,
		Name:        c.Name,
		Industry:    firstIndustry(c),
		Location:    hqCountry(c),
		Description: c.Description,
		Size:        c.StaffCount,
		URL:         companyURL(c.ID),
	}
}

// SearchPeopleParams are the arguments of the people search tool.
type SearchPeopleParams struct {
	Keywords string
	Title    string
	Company  string
	Industry string
	Location string
	School   string
	Skill    string
	Limit    int
}

// SearchPeople searches member profiles by the given criteria. When a
// skill filter is present, each hit's skill list is checked and
// non-matching people are dropped.
func (s *Service) SearchPeople(ctx context.Context, params SearchPeopleParams) ([]PersonSummary, error) {
	limit := normalizeLimit(params.Limit, s.defaults.SearchLimit)

	people, err := s.li.SearchPeople(ctx, linkedin.PeopleSearchParams{
		Keywords:     params.Keywords,
		Title:        params.Title,
		CompanyName:  params.Company,
		Industry:     params.Industry,
		LocationName: params.Location,
		SchoolName:   params.School,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	if params.Skill != "" {
		filtered := make([]linkedin.Person, 0, len(people))
		for _, person := range people {
			skills, err := s.li.GetProfileSkills(ctx, person.PublicID)
			if err != nil {
				return nil, err
			}
			for _, skill := range skills {
				if containsFold(skill.Name, params.Skill) {
					filtered = append(filtered, person)
					break
				}
			}
		}
		people = filtered
	}

	if len(people) > limit {
		people = people[:limit]
	}

	results := make([]PersonSummary, 0, len(people))
	for _, person := range people {
		results = append(results, personSummary(person, ""))
	}
	return results, nil
}

func personSummary(p linkedin.Person, company string) PersonSummary {
	return PersonSummary{
		ID:       p.PublicID,
		Name:     fullName(p.FirstName, p.LastName),
		Title:    p.Occupation,
		Company:  company,
		Location: p.LocationName,
		URL:      profileURL(p.PublicID),
	}
}

// SearchPeopleBySkillsParams are the arguments of the skill search tool.
type SearchPeopleBySkillsParams struct {
	Skills   []string
	Title    string
	Industry string
	Location string
	Limit    int
}

// SearchPeopleBySkills finds people holding all of the given skills. The
// first skill seeds the keyword search; the rest are verified against
// each candidate's skill list.
func (s *Service) SearchPeopleBySkills(ctx context.Context, params SearchPeopleBySkillsParams) ([]SkillMatch, error) {
	if len(params.Skills) == 0 {
		return nil, errors.InvalidParams("skills is required")
	}
	limit := normalizeLimit(params.Limit, s.defaults.SearchLimit)

	// Over-fetch; skill verification below discards candidates.
	people, err := s.li.SearchPeople(ctx, linkedin.PeopleSearchParams{
		Keywords:     params.Skills[0],
		Title:        params.Title,
		Industry:     params.Industry,
		LocationName: params.Location,
		Limit:        limit * 2,
	})
	if err != nil {
		return nil, err
	}

	var matches []SkillMatch
	for _, person := range people {
		if len(matches) >= limit {
			break
		}

		skills, err := s.li.GetProfileSkills(ctx, person.PublicID)
		if err != nil {
			return nil, err
		}

		var matched []string
		for _, skill := range skills {
			for _, want := range params.Skills {
				if containsFold(skill.Name, want) {
					matched = append(matched, skill.Name)
					break
				}
			}
		}

		hasAll := true
		for _, want := range params.Skills {
			found := false
			for _, skill := range skills {
				if containsFold(skill.Name, want) {
					found = true
					break
				}
			}
			if !found {
				hasAll = false
				break
			}
		}
		if !hasAll {
			continue
		}

		matches = append(matches, SkillMatch{
			PersonSummary: personSummary(person, ""),
			MatchedSkills: matched,
		})
	}
	return matches, nil
}
