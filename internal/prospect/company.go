package prospect

import (
	"context"

	"github.com/leadscout/linkedin-mcp/internal/errors"
	"github.com/leadscout/linkedin-mcp/internal/linkedin"
)

// GetCompanyDetails fetches the detail view of a company.
func (s *Service) GetCompanyDetails(ctx context.Context, companyID string) (*CompanyDetails, error) {
	if companyID == "" {
		return nil, errors.InvalidParams("company_id is required")
	}

	company, err := s.li.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return &CompanyDetails{
		ID:          companyID,
		Name:        company.Name,
		Industry:    firstIndustry(*company),
		Description: company.Description,
		Website:     company.WebsiteURL,
		Location:    hqLocation(*company),
		Size:        company.StaffCount,
		Specialties: company.Specialities,
		Founded:     company.FoundedYear,
	}, nil
}

// GetCompanyUpdates fetches recent posts from a company page.
func (s *Service) GetCompanyUpdates(ctx context.Context, companyID string, limit int) ([]CompanyUpdate, error) {
	if companyID == "" {
		return nil, errors.InvalidParams("company_id is required")
	}
	limit = normalizeLimit(limit, 5)

	updates, err := s.li.GetCompanyUpdates(ctx, companyID, limit)
	if err != nil {
		return nil, err
	}

	results := make([]CompanyUpdate, 0, len(updates))
	for _, update := range updates {
		results = append(results, CompanyUpdate{
			Content:   update.Text,
			Timestamp: update.PostedAt,
		})
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// SearchCompanyEmployees finds people working at a company, optionally
// filtered by title. The company is resolved first so the people search
// can filter on its canonical name.
func (s *Service) SearchCompanyEmployees(ctx context.Context, companyID, title string, limit int) ([]PersonSummary, error) {
	if companyID == "" {
		return nil, errors.InvalidParams("company_id is required")
	}
	limit = normalizeLimit(limit, s.defaults.SearchLimit)

	company, err := s.li.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.Name == "" {
		return nil, errors.NotFound("company", companyID)
	}

	people, err := s.li.SearchPeople(ctx, linkedin.PeopleSearchParams{
		CompanyName: company.Name,
		Title:       title,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]PersonSummary, 0, len(people))
	for _, person := range people {
		results = append(results, personSummary(person, company.Name))
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// FindDecisionMakers finds people at a company holding leadership
// titles. The limit is spread across the title list so a single common
// title cannot crowd out the rest.
func (s *Service) FindDecisionMakers(ctx context.Context, companyID string, titles []string, limit int) ([]PersonSummary, error) {
	if companyID == "" {
		return nil, errors.InvalidParams("company_id is required")
	}
	limit = normalizeLimit(limit, 5)
	if len(titles) == 0 {
		titles = s.defaults.DecisionMakerTitles
	}

	company, err := s.li.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.Name == "" {
		return nil, errors.NotFound("company", companyID)
	}

	perTitle := limit/len(titles) + 1
	var results []PersonSummary
	for _, title := range titles {
		if len(results) >= limit {
			break
		}

		people, err := s.li.SearchPeople(ctx, linkedin.PeopleSearchParams{
			CompanyName: company.Name,
			Title:       title,
			Limit:       perTitle,
		})
		if err != nil {
			return nil, err
		}

		for _, person := range people {
			results = append(results, personSummary(person, company.Name))
		}
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
