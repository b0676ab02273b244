package linkedin

import (
	"context"
	"net/url"
	"strconv"

	"github.com/leadscout/linkedin-mcp/internal/errors"
)

// GetCompany fetches company details by universal name or numeric id.
func (c *Client) GetCompany(ctx context.Context, companyID string) (*Company, error) {
	if companyID == "" {
		return nil, errors.InvalidParams("company id is required")
	}

	q := url.Values{}
	q.Set("q", "universalName")
	q.Set("universalName", companyID)

	var resp struct {
		Elements []companyHit `json:"elements"`
	}
	if err := c.get(ctx, "/organization/companies", q, &resp); err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.NotFound("company", companyID)
		}
		return nil, err
	}
	if len(resp.Elements) == 0 {
		return nil, errors.NotFound("company", companyID)
	}

	company := resp.Elements[0].toCompany()
	if company.ID == "" {
		company.ID = companyID
	}
	return &company, nil
}

// GetCompanyUpdates fetches recent updates from a company page.
func (c *Client) GetCompanyUpdates(ctx context.Context, companyID string, limit int) ([]Update, error) {
	if companyID == "" {
		return nil, errors.InvalidParams("company id is required")
	}

	q := url.Values{}
	q.Set("q", "companyFeedByUniversalName")
	q.Set("universalName", companyID)
	q.Set("moduleKey", "member-share")
	q.Set("count", strconv.Itoa(searchCount(limit)))

	var resp feedResponse
	if err := c.get(ctx, "/feed/updates", q, &resp); err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.NotFound("company", companyID)
		}
		return nil, err
	}
	return resp.updates(), nil
}
