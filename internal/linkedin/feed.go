package linkedin

import (
	"context"
	"net/url"
	"strconv"
)

// updateV2Key is the polymorphic wrapper LinkedIn nests feed updates under.
const updateV2Key = "com.linkedin.voyager.feed.render.UpdateV2"

// feedResponse decodes feed and share updates. Each element is keyed by
// the render type; anything that is not an UpdateV2 is skipped.
type feedResponse struct {
	Elements []struct {
		Value map[string]updateV2 `json:"value"`
	} `json:"elements"`
}

type updateV2 struct {
	Actor struct {
		Name struct {
			Text string `json:"text"`
		} `json:"name"`
		SubDescription struct {
			Text string `json:"text"`
		} `json:"subDescription"`
	} `json:"actor"`
	Commentary struct {
		Text struct {
			Text string `json:"text"`
		} `json:"text"`
	} `json:"commentary"`
}

func (r *feedResponse) posts() []Post {
	var posts []Post
	for _, el := range r.Elements {
		update, ok := el.Value[updateV2Key]
		if !ok {
			continue
		}
		posts = append(posts, Post{
			AuthorName: update.Actor.Name.Text,
			Text:       update.Commentary.Text.Text,
			PostedAt:   update.Actor.SubDescription.Text,
		})
	}
	return posts
}

func (r *feedResponse) updates() []Update {
	var updates []Update
	for _, el := range r.Elements {
		update, ok := el.Value[updateV2Key]
		if !ok {
			continue
		}
		updates = append(updates, Update{
			Text:     update.Commentary.Text.Text,
			PostedAt: update.Actor.SubDescription.Text,
		})
	}
	return updates
}

// GetFeedPosts fetches posts from the authenticated member's feed.
func (c *Client) GetFeedPosts(ctx context.Context, limit, offset int) ([]Post, error) {
	q := url.Values{}
	q.Set("q", "chronFeed")
	q.Set("start", strconv.Itoa(offset))
	q.Set("count", strconv.Itoa(searchCount(limit)))

	var resp feedResponse
	if err := c.get(ctx, "/feed/updatesV2", q, &resp); err != nil {
		return nil, err
	}
	return resp.posts(), nil
}
