package mixto

import (
	"context"
	"net/http"
)

const userPath = "/api/v1/user"

// UserGet returns the calling user's profile.
func (c *Client) UserGet(ctx context.Context) (*UserInfo, error) {
	var result UserInfo
	err := c.do(ctx, http.MethodGet, userPath, nil, &result)
	return &result, err
}

// UserUpdate changes the calling user's username and avatar.
func (c *Client) UserUpdate(ctx context.Context, username, avatar string) (*UserInfo, error) {
	body := map[string]string{"username": username, "avatar": avatar}
	var result UserInfo
	err := c.do(ctx, http.MethodPost, userPath, body, &result)
	return &result, err
}

// UserResetAPIKey revokes the current API key and returns the profile
// with the replacement key. The client keeps using the old key, so a new
// client must be constructed afterwards.
func (c *Client) UserResetAPIKey(ctx context.Context) (*UserInfo, error) {
	var result UserInfo
	err := c.do(ctx, http.MethodDelete, userPath, nil, &result)
	return &result, err
}

// ServerVersion reports the build information of the connected server.
func (c *Client) ServerVersion(ctx context.Context) (*ServerVersion, error) {
	var result ServerVersion
	err := c.do(ctx, http.MethodGet, "/api/v1/version", nil, &result)
	return &result, err
}

// ValidData returns the entry category, commit type and priority values
// the server accepts. Useful for validating input before committing.
func (c *Client) ValidData(ctx context.Context) (*ValidDataTypes, error) {
	var result ValidDataTypes
	err := c.do(ctx, http.MethodGet, "/api/v1/data-types", nil, &result)
	return &result, err
}
