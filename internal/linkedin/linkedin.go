// Package linkedin implements a minimal client for LinkedIn's unofficial
// Voyager web API. It owns session handling (cookie jar plus csrf token),
// request pacing, and decoding of the handful of response fields the rest
// of the program reads. Everything else in the upstream JSON is ignored.
package linkedin

import "context"

// API is the surface the prospecting layer calls. *Client implements it;
// tests substitute a recording fake.
type API interface {
	SearchPeople(ctx context.Context, params PeopleSearchParams) ([]Person, error)
	SearchCompanies(ctx context.Context, params CompanySearchParams) ([]Company, error)
	SearchJobs(ctx context.Context, params JobSearchParams) ([]Job, error)

	GetProfile(ctx context.Context, publicID string) (*Profile, error)
	GetProfileSkills(ctx context.Context, publicID string) ([]Skill, error)
	GetProfilePosts(ctx context.Context, publicID string, limit int) ([]Post, error)

	GetCompany(ctx context.Context, companyID string) (*Company, error)
	GetCompanyUpdates(ctx context.Context, companyID string, limit int) ([]Update, error)

	GetJob(ctx context.Context, jobID string) (*JobPosting, error)
	GetFeedPosts(ctx context.Context, limit, offset int) ([]Post, error)
}

var _ API = (*Client)(nil)
