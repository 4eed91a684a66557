package mixto

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

const adminPath = "/api/admin"

// AdminWorkspaceExport exports a workspace as an opaque document that can
// later be fed to AdminWorkspaceImport.
func (c *Client) AdminWorkspaceExport(ctx context.Context, workspaceID string) (WorkspaceExport, error) {
	body := map[string]string{"workspace_id": workspaceID}
	var result json.RawMessage
	err := c.do(ctx, http.MethodPost, adminPath+"/workspace/export", body, &result)
	return WorkspaceExport(result), err
}

// AdminWorkspaceImport imports a previously exported workspace.
func (c *Client) AdminWorkspaceImport(ctx context.Context, export WorkspaceExport) (*Workspace, error) {
	var result Workspace
	err := c.do(ctx, http.MethodPost, adminPath+"/workspace/import", json.RawMessage(export), &result)
	return &result, err
}

// AdminReindexWorkspace rebuilds the search index for one workspace.
func (c *Client) AdminReindexWorkspace(ctx context.Context, workspaceID string) error {
	body := map[string]string{"workspace_id": workspaceID}
	return c.do(ctx, http.MethodPost, adminPath+"/reindex", body, nil)
}

// AdminReindexAll rebuilds the search index for every workspace.
func (c *Client) AdminReindexAll(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, adminPath+"/reindex/all", nil, nil)
}

// AdminWorkspaceBackups lists stored workspace backups.
func (c *Client) AdminWorkspaceBackups(ctx context.Context) ([]Backup, error) {
	var result []Backup
	err := c.do(ctx, http.MethodGet, adminPath+"/backups", nil, &result)
	return result, err
}

// AdminBackupWorkspace creates a backup of a workspace.
func (c *Client) AdminBackupWorkspace(ctx context.Context, workspaceID string) (*Backup, error) {
	body := map[string]string{"workspace_id": workspaceID}
	var result Backup
	err := c.do(ctx, http.MethodPost, adminPath+"/backups", body, &result)
	return &result, err
}

// AdminRestoreWorkspace restores a workspace from a backup key.
func (c *Client) AdminRestoreWorkspace(ctx context.Context, key string) (*Workspace, error) {
	body := map[string]string{"key": key}
	var result Workspace
	err := c.do(ctx, http.MethodPost, adminPath+"/backups/restore", body, &result)
	return &result, err
}

// AdminFileList lists all stored files across workspaces.
func (c *Client) AdminFileList(ctx context.Context) ([]AdminFile, error) {
	var result []AdminFile
	err := c.do(ctx, http.MethodGet, adminPath+"/files", nil, &result)
	return result, err
}

// AdminFileDelete removes a stored file by its storage key.
func (c *Client) AdminFileDelete(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodDelete, adminPath+"/files/"+url.PathEscape(key), nil, nil)
}

// AdminServiceAccounts lists configured service accounts.
func (c *Client) AdminServiceAccounts(ctx context.Context) ([]ServiceAccount, error) {
	var result []ServiceAccount
	err := c.do(ctx, http.MethodGet, adminPath+"/service-accounts", nil, &result)
	return result, err
}
