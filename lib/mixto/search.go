package mixto

import (
	"context"
	"net/http"
)

// Search runs a full-text search over entries and commits and returns
// the matching hits.
func (c *Client) Search(ctx context.Context, query string) ([]SearchHit, error) {
	body := map[string]string{"query": query}
	var result []SearchHit
	err := c.do(ctx, http.MethodPost, "/api/v1/search", body, &result)
	return result, err
}
