package linkedin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/leadscout/linkedin-mcp/internal/errors"
)

// profileView is the Voyager profileView envelope. The profile core and
// the position/education sections arrive as separate sub-views.
type profileView struct {
	Profile struct {
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		Headline     string `json:"headline"`
		LocationName string `json:"locationName"`
		IndustryName string `json:"industryName"`
	} `json:"profile"`
	PositionView struct {
		Elements []Position `json:"elements"`
	} `json:"positionView"`
	EducationView struct {
		Elements []Education `json:"elements"`
	} `json:"educationView"`
}

// GetProfile fetches the full profile view for a member by public id.
func (c *Client) GetProfile(ctx context.Context, publicID string) (*Profile, error) {
	if publicID == "" {
		return nil, errors.InvalidParams("profile id is required")
	}

	var view profileView
	path := fmt.Sprintf("/identity/profiles/%s/profileView", url.PathEscape(publicID))
	if err := c.get(ctx, path, nil, &view); err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.NotFound("profile", publicID)
		}
		return nil, err
	}

	return &Profile{
		PublicID:     publicID,
		FirstName:    view.Profile.FirstName,
		LastName:     view.Profile.LastName,
		Headline:     view.Profile.Headline,
		LocationName: view.Profile.LocationName,
		IndustryName: view.Profile.IndustryName,
		Experience:   view.PositionView.Elements,
		Education:    view.EducationView.Elements,
	}, nil
}

// GetProfileSkills fetches the skills section of a profile.
func (c *Client) GetProfileSkills(ctx context.Context, publicID string) ([]Skill, error) {
	if publicID == "" {
		return nil, errors.InvalidParams("profile id is required")
	}

	q := url.Values{}
	q.Set("start", "0")
	q.Set("count", "100")

	var resp struct {
		Elements []Skill `json:"elements"`
	}
	path := fmt.Sprintf("/identity/profiles/%s/skills", url.PathEscape(publicID))
	if err := c.get(ctx, path, q, &resp); err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.NotFound("profile", publicID)
		}
		return nil, err
	}
	return resp.Elements, nil
}

// GetProfilePosts fetches a member's recent posts, newest first.
func (c *Client) GetProfilePosts(ctx context.Context, publicID string, limit int) ([]Post, error) {
	if publicID == "" {
		return nil, errors.InvalidParams("profile id is required")
	}

	q := url.Values{}
	q.Set("q", "memberShareFeed")
	q.Set("count", strconv.Itoa(searchCount(limit)))

	var resp feedResponse
	path := fmt.Sprintf("/identity/profiles/%s/posts", url.PathEscape(publicID))
	if err := c.get(ctx, path, q, &resp); err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.NotFound("profile", publicID)
		}
		return nil, err
	}
	return resp.posts(), nil
}
