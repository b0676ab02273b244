package linkedin

import (
	"context"
	"fmt"
	"net/url"

	"github.com/leadscout/linkedin-mcp/internal/errors"
)

// jobPostingView is the detail response for a single job posting. The
// company arrives wrapped in a polymorphic companyDetails union.
type jobPostingView struct {
	Title       string `json:"title"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	FormattedLocation string                `json:"formattedLocation"`
	CompanyDetails    map[string]jobCompany `json:"companyDetails"`
}

type jobCompany struct {
	CompanyResolutionResult struct {
		Name      string `json:"name"`
		EntityUrn string `json:"entityUrn"`
	} `json:"companyResolutionResult"`
}

// company picks the resolved company out of the union; the wrapper key
// varies by decoration so the first non-empty result wins.
func (v *jobPostingView) company() (id, name string) {
	for _, detail := range v.CompanyDetails {
		if detail.CompanyResolutionResult.Name != "" {
			return urnID(detail.CompanyResolutionResult.EntityUrn), detail.CompanyResolutionResult.Name
		}
	}
	return "", ""
}

// GetJob fetches the detail view of a job posting by id.
func (c *Client) GetJob(ctx context.Context, jobID string) (*JobPosting, error) {
	if jobID == "" {
		return nil, errors.InvalidParams("job id is required")
	}

	var view jobPostingView
	path := fmt.Sprintf("/jobs/jobPostings/%s", url.PathEscape(jobID))
	if err := c.get(ctx, path, nil, &view); err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.NotFound("job", jobID)
		}
		return nil, err
	}

	companyID, companyName := view.company()
	return &JobPosting{
		ID:                jobID,
		Title:             view.Title,
		CompanyID:         companyID,
		CompanyName:       companyName,
		Description:       view.Description.Text,
		FormattedLocation: view.FormattedLocation,
	}, nil
}
