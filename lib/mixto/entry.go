package mixto

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// CommitAddParams describes a commit to add to an entry.
type CommitAddParams struct {
	EntryID string `json:"entry_id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Data    string `json:"data"`
}

// CommitAdd adds a data commit to an entry. Type should be one of the
// CommitType constants; the server rejects unknown types.
func (c *Client) CommitAdd(ctx context.Context, params *CommitAddParams) (*Commit, error) {
	var result Commit
	err := c.do(ctx, http.MethodPost, "/api/v1/commit", params, &result)
	return &result, err
}

// FileUpload uploads a file as a file commit on an entry. The whole body
// is read into the multipart form before sending; there is no retry on
// upload since the reader cannot be rewound.
func (c *Client) FileUpload(ctx context.Context, entryID, filename string, r io.Reader) (*Commit, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("entry_id", entryID); err != nil {
		return nil, fmt.Errorf("mixto: build upload form: %w", err)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("mixto: build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("mixto: read upload body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("mixto: build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.makeURL("/api/v1/file"), &buf)
	if err != nil {
		return nil, fmt.Errorf("mixto: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", w.FormDataContentType())

	var result Commit
	if _, err := c.send(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FileGet downloads the file behind a file commit. The caller must close
// the returned reader.
func (c *Client) FileGet(ctx context.Context, fileID string) (io.ReadCloser, error) {
	return c.download(ctx, "/api/v1/file/"+url.PathEscape(fileID))
}
