package linkedin

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// blendedFilter renders Voyager's List(key->value,...) filter syntax.
func blendedFilter(pairs [][2]string) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p[0]+"->"+p[1])
	}
	return "List(" + strings.Join(parts, ",") + ")"
}

// blendedResponse is the envelope shared by blended search result types.
type blendedResponse[T any] struct {
	Elements []struct {
		Elements []T `json:"elements"`
	} `json:"elements"`
}

func (r *blendedResponse[T]) flatten() []T {
	var out []T
	for _, group := range r.Elements {
		out = append(out, group.Elements...)
	}
	return out
}

type personHit struct {
	PublicIdentifier string `json:"publicIdentifier"`
	EntityUrn        string `json:"entityUrn"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Occupation       string `json:"occupation"`
	LocationName     string `json:"locationName"`
}

// SearchPeople runs a blended people search with the given filters.
func (c *Client) SearchPeople(ctx context.Context, params PeopleSearchParams) ([]Person, error) {
	filters := [][2]string{{"resultType", "PEOPLE"}}
	if params.Title != "" {
		filters = append(filters, [2]string{"title", params.Title})
	}
	if params.CompanyName != "" {
		filters = append(filters, [2]string{"currentCompany", params.CompanyName})
	}
	if params.Industry != "" {
		filters = append(filters, [2]string{"industry", params.Industry})
	}
	if params.SchoolName != "" {
		filters = append(filters, [2]string{"school", params.SchoolName})
	}
	if params.LocationName != "" {
		filters = append(filters, [2]string{"geoRegion", params.LocationName})
	}

	q := url.Values{}
	q.Set("q", "all")
	q.Set("origin", "GLOBAL_SEARCH_HEADER")
	q.Set("filters", blendedFilter(filters))
	if params.Keywords != "" {
		q.Set("keywords", params.Keywords)
	}
	q.Set("start", strconv.Itoa(params.Offset))
	q.Set("count", strconv.Itoa(searchCount(params.Limit)))

	var resp blendedResponse[personHit]
	if err := c.get(ctx, "/search/blended", q, &resp); err != nil {
		return nil, err
	}

	var people []Person
	for _, hit := range resp.flatten() {
		people = append(people, Person{
			PublicID:     hit.PublicIdentifier,
			URNID:        urnID(hit.EntityUrn),
			FirstName:    hit.FirstName,
			LastName:     hit.LastName,
			Occupation:   hit.Occupation,
			LocationName: hit.LocationName,
		})
	}
	return people, nil
}

type companyHit struct {
	EntityUrn    string   `json:"entityUrn"`
	Name         string   `json:"name"`
	Industries   []string `json:"industries"`
	Description  string   `json:"description"`
	StaffCount   int      `json:"staffCount"`
	Headquarter  *Address `json:"headquarter"`
	WebsiteURL   string   `json:"websiteUrl"`
	Specialities []string `json:"specialities"`
	FoundedOn    *Date    `json:"foundedOn"`
}

func (h companyHit) toCompany() Company {
	company := Company{
		ID:           urnID(h.EntityUrn),
		Name:         h.Name,
		Industries:   h.Industries,
		Description:  h.Description,
		StaffCount:   h.StaffCount,
		Headquarter:  h.Headquarter,
		WebsiteURL:   h.WebsiteURL,
		Specialities: h.Specialities,
	}
	if h.FoundedOn != nil {
		company.FoundedYear = h.FoundedOn.Year
	}
	return company
}

// SearchCompanies runs a blended company search with the given filters.
func (c *Client) SearchCompanies(ctx context.Context, params CompanySearchParams) ([]Company, error) {
	filters := [][2]string{{"resultType", "COMPANIES"}}
	if params.Industry != "" {
		filters = append(filters, [2]string{"industry", params.Industry})
	}
	if params.Location != "" {
		filters = append(filters, [2]string{"geoRegion", params.Location})
	}

	q := url.Values{}
	q.Set("q", "all")
	q.Set("origin", "GLOBAL_SEARCH_HEADER")
	q.Set("filters", blendedFilter(filters))
	if params.Keywords != "" {
		q.Set("keywords", params.Keywords)
	}
	q.Set("start", strconv.Itoa(params.Offset))
	q.Set("count", strconv.Itoa(searchCount(params.Limit)))

	var resp blendedResponse[companyHit]
	if err := c.get(ctx, "/search/blended", q, &resp); err != nil {
		return nil, err
	}

	var companies []Company
	for _, hit := range resp.flatten() {
		companies = append(companies, hit.toCompany())
	}
	return companies, nil
}

type jobHit struct {
	EntityUrn         string `json:"entityUrn"`
	Title             string `json:"title"`
	CompanyName       string `json:"companyName"`
	FormattedLocation string `json:"formattedLocation"`
}

// SearchJobs runs a job search.
func (c *Client) SearchJobs(ctx context.Context, params JobSearchParams) ([]Job, error) {
	filters := [][2]string{{"resultType", "JOBS"}}
	if params.CompanyName != "" {
		filters = append(filters, [2]string{"company", params.CompanyName})
	}

	q := url.Values{}
	q.Set("q", "jserpFilters")
	q.Set("filters", blendedFilter(filters))
	if params.Keywords != "" {
		q.Set("keywords", params.Keywords)
	}
	if params.Location != "" {
		q.Set("location", params.Location)
	}
	q.Set("start", strconv.Itoa(params.Offset))
	q.Set("count", strconv.Itoa(searchCount(params.Limit)))

	var resp struct {
		Elements []jobHit `json:"elements"`
	}
	if err := c.get(ctx, "/search/hits", q, &resp); err != nil {
		return nil, err
	}

	var jobs []Job
	for _, hit := range resp.Elements {
		jobs = append(jobs, Job{
			ID:          urnID(hit.EntityUrn),
			Title:       hit.Title,
			CompanyName: hit.CompanyName,
			Location:    hit.FormattedLocation,
		})
	}
	return jobs, nil
}

// searchCount clamps the requested page size to Voyager's maximum of 49.
func searchCount(limit int) int {
	const maxCount = 49
	if limit <= 0 || limit > maxCount {
		return maxCount
	}
	return limit
}
