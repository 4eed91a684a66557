package mixto

import (
	"context"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const importTimeout = 60 * time.Second
const importMaxErrors = 10 // Max consequent import errors before failing whole run

// Artifact is a remote file that can be imported into an entry.
type Artifact struct {
	URL      string
	Path     string
	Filename string
}

// ImportArtifacts performs artifact import. It starts to consume artifacts
// from ch until it's closed, downloading each URL and uploading it as a
// file commit on the entry. It can tolerate several errors, but once their
// amount reaches certain threshold, it breaks the import
func (c *Client) ImportArtifacts(ctx context.Context, entryID string, ch <-chan Artifact) {
	errs := 0
	for a := range ch {
		if errs > importMaxErrors {
			log.Fatalf("Too many errors happened one by one, giving up import")
		}
		callCtx, cancel := context.WithTimeout(ctx, importTimeout)
		if err := c.importOne(callCtx, entryID, a); err == nil {
			errs = 0 // Reset errors counter
		} else {
			log.Warnf("Unable to import file %s: %s", a.Path, err)
			errs++
		}
		cancel() // Avoid contexts leak
	}
	// Channel is closed by another goroutine
	log.Info("Import is done")
}

// importOne fetches the artifact from its (usually presigned) URL and
// uploads it. The download carries no API key; the URL itself is the
// credential.
func (c *Client) importOne(ctx context.Context, entryID string, a Artifact) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, nil)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", a.Path, err)
	}
	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", a.Path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetch %s: HTTP %d", a.Path, resp.StatusCode)
	}

	_, err = c.FileUpload(ctx, entryID, a.Filename, resp.Body)
	return err
}
