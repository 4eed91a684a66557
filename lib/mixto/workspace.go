package mixto

import (
	"context"
	"net/http"
)

const workspacePath = "/api/v1/workspace"

// WorkspaceList returns all workspaces visible to the calling user.
func (c *Client) WorkspaceList(ctx context.Context) ([]Workspace, error) {
	var result []Workspace
	err := c.do(ctx, http.MethodGet, workspacePath, nil, &result)
	return result, err
}

// WorkspaceEntries returns the entries of a workspace. An empty
// workspaceID falls back to the workspace from the resolved config.
// Set includeCommits to also receive each entry's commit list.
func (c *Client) WorkspaceEntries(ctx context.Context, workspaceID string, includeCommits bool) ([]Entry, error) {
	if workspaceID == "" {
		workspaceID = c.conf.WorkspaceID
	}
	body := map[string]any{
		"workspace_id":    workspaceID,
		"include_commits": includeCommits,
	}
	var result []Entry
	err := c.do(ctx, http.MethodPost, workspacePath, body, &result)
	return result, err
}

// EntryCommits returns the commits of a single entry.
func (c *Client) EntryCommits(ctx context.Context, entryID string) ([]Commit, error) {
	body := map[string]string{"entry_id": entryID}
	var result []Commit
	err := c.do(ctx, http.MethodPost, workspacePath+"/commits", body, &result)
	return result, err
}
