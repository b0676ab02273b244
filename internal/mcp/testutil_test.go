package mcp

import (
	"context"
	"testing"

	"github.com/leadscout/linkedin-mcp/internal/errors"
	"github.com/leadscout/linkedin-mcp/internal/linkedin"
	"github.com/leadscout/linkedin-mcp/internal/prospect"
	"github.com/mark3labs/mcp-go/mcp"
)

// newTestRequest creates a CallToolRequest for testing
func newTestRequest(arguments map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: arguments,
		},
	}
}

// getResultText extracts the text from a CallToolResult for testing
func getResultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := mcp.AsTextContent(result.Content[0]); ok {
		return textContent.Text
	}
	return ""
}

// fakeAPI is a canned linkedin.API for handler tests.
type fakeAPI struct {
	people    []linkedin.Person
	peopleErr error

	companies []linkedin.Company
	jobs      []linkedin.Job

	profiles map[string]*linkedin.Profile
	skills   map[string][]linkedin.Skill

	companyByID map[string]*linkedin.Company
	updates     map[string][]linkedin.Update
	jobPostings map[string]*linkedin.JobPosting

	feedPosts []linkedin.Post
	feedErr   error
}

var _ linkedin.API = (*fakeAPI)(nil)

func (f *fakeAPI) SearchPeople(ctx context.Context, params linkedin.PeopleSearchParams) ([]linkedin.Person, error) {
	return f.people, f.peopleErr
}

func (f *fakeAPI) SearchCompanies(ctx context.Context, params linkedin.CompanySearchParams) ([]linkedin.Company, error) {
	return f.companies, nil
}

func (f *fakeAPI) SearchJobs(ctx context.Context, params linkedin.JobSearchParams) ([]linkedin.Job, error) {
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
	return nil, errors.NotFound("profile", publicID)
}

func (f *fakeAPI) GetCompany(ctx context.Context, companyID string) (*linkedin.Company, error) {
	if company, ok := f.companyByID[companyID]; ok {
		return company, nil
	}
	return nil, errors.NotFound("company", companyID)
}

func (f *fakeAPI) GetCompanyUpdates(ctx context.Context, companyID string, limit int) ([]linkedin.Update, error) {
	return f.updates[companyID], nil
}

func (f *fakeAPI) GetJob(ctx context.Context, jobID string) (*linkedin.JobPosting, error) {
	if posting, ok := f.jobPostings[jobID]; ok {
		return posting, nil
	}
	return nil, errors.NotFound("job", jobID)
}

func (f *fakeAPI) GetFeedPosts(ctx context.Context, limit, offset int) ([]linkedin.Post, error) {
	return f.feedPosts, f.feedErr
}

// newTestServer builds a Server over a fake client.
func newTestServer(t *testing.T, fake *fakeAPI) *Server {
	t.Helper()
	return newServerWithService(prospect.NewService(fake))
}
