package prospect

import (
	"context"

	"github.com/leadscout/linkedin-mcp/internal/errors"
	"github.com/leadscout/linkedin-mcp/internal/linkedin"
)

// fakeAPI is a canned, recording implementation of linkedin.API.
// Lookups miss with NOT_FOUND unless primed; searches record the params
// they were called with.
type fakeAPI struct {
	people        []linkedin.Person
	peopleByTitle map[string][]linkedin.Person
	peopleErr     error
	peopleCalls   []linkedin.PeopleSearchParams

	companies      []linkedin.Company
	companiesErr   error
	companiesCalls []linkedin.CompanySearchParams

	jobs      []linkedin.Job
	jobsErr   error
	jobsCalls []linkedin.JobSearchParams

	profiles map[string]*linkedin.Profile
	skills   map[string][]linkedin.Skill
	posts    map[string][]linkedin.Post

	companyByID map[string]*linkedin.Company
	updates     map[string][]linkedin.Update
	updatesErr  error

	jobPostings map[string]*linkedin.JobPosting

	feedPosts []linkedin.Post
	feedErr   error
}

var _ linkedin.API = (*fakeAPI)(nil)

func (f *fakeAPI) SearchPeople(ctx context.Context, params linkedin.PeopleSearchParams) ([]linkedin.Person, error) {
	f.peopleCalls = append(f.peopleCalls, params)
	if f.peopleErr != nil {
		return nil, f.peopleErr
	}
	if f.peopleByTitle != nil {
		if people, ok := f.peopleByTitle[params.Title]; ok {
			return people, nil
		}
		return nil, nil
	}
	return f.people, nil
}

func (f *fakeAPI) SearchCompanies(ctx context.Context, params linkedin.CompanySearchParams) ([]linkedin.Company, error) {
	f.companiesCalls = append(f.companiesCalls, params)
	if f.companiesErr != nil {
		return nil, f.companiesErr
	}
	return f.companies, nil
}

func (f *fakeAPI) SearchJobs(ctx context.Context, params linkedin.JobSearchParams) ([]linkedin.Job, error) {
	f.jobsCalls = append(f.jobsCalls, params)
	if f.jobsErr != nil {
		return nil, f.jobsErr
	}
	return f.jobs, nil
}

func (f *fakeAPI) GetProfile(ctx context.Context, publicID string) (*linkedin.Profile, error) {
	if profile, ok := f.profiles[publicID]; ok {
		return profile, nil
	}
	return nil, errors.NotFound("profile", publicID)
}

func (f *fakeAPI) GetProfileSkills(ctx context.Context, publicID string) ([]linkedin.Skill, error) {
	return f.skills[publicID], nil
}

func (f *fakeAPI) GetProfilePosts(ctx context.Context, publicID string, limit int) ([]linkedin.Post, error) {
	if posts, ok := f.posts[publicID]; ok {
		return posts, nil
	}
	return nil, errors.NotFound("profile", publicID)
}

func (f *fakeAPI) GetCompany(ctx context.Context, companyID string) (*linkedin.Company, error) {
	if company, ok := f.companyByID[companyID]; ok {
		return company, nil
	}
	return nil, errors.NotFound("company", companyID)
}

func (f *fakeAPI) GetCompanyUpdates(ctx context.Context, companyID string, limit int) ([]linkedin.Update, error) {
	if f.updatesErr != nil {
		return nil, f.updatesErr
	}
	return f.updates[companyID], nil
}

func (f *fakeAPI) GetJob(ctx context.Context, jobID string) (*linkedin.JobPosting, error) {
	if posting, ok := f.jobPostings[jobID]; ok {
		return posting, nil
	}
	return nil, errors.NotFound("job", jobID)
}

func (f *fakeAPI) GetFeedPosts(ctx context.Context, limit, offset int) ([]linkedin.Post, error) {
	if f.feedErr != nil {
		return nil, f.feedErr
	}
	return f.feedPosts, nil
}

// testProfile builds a profile with a current role at company and a
// previous role at prevCompany.
func testProfile(first, last, headline, company, title, prevCompany string) *linkedin.Profile {
	return &linkedin.Profile{
		FirstName:    first,
		LastName:     last,
		Headline:     headline,
		LocationName: "London",
		IndustryName: "Software",
		Experience: []linkedin.Position{
			{
				CompanyName: company,
				Title:       title,
				TimePeriod: linkedin.TimePeriod{
					StartDate: &linkedin.Date{Year: 2022, Month: 6},
				},
			},
			{
				CompanyName: prevCompany,
				Title:       "Engineer",
				TimePeriod: linkedin.TimePeriod{
					StartDate: &linkedin.Date{Year: 2018, Month: 1},
					EndDate:   &linkedin.Date{Year: 2022, Month: 5},
				},
			},
		},
		Education: []linkedin.Education{
			{SchoolName: "MIT", DegreeName: "BSc", FieldOfStudy: "Computer Science"},
		},
	}
}

func namedSkills(names ...string) []linkedin.Skill {
	skills := make([]linkedin.Skill, 0, len(names))
	for _, name := range names {
		skills = append(skills, linkedin.Skill{Name: name})
	}
	return skills
}
