package mixto

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportArtifacts(t *testing.T) {
	// Stands in for a bucket serving presigned objects.
	objects := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("x-api-key"), "presigned downloads must not leak the API key")
		switch r.URL.Path {
		case "/loot/dump.bin":
			w.Write([]byte("dump-data"))
		case "/loot/creds.txt":
			w.Write([]byte("creds-data"))
		default:
			w.WriteHeader(404)
		}
	}))
	defer objects.Close()

	type upload struct {
		entryID  string
		filename string
		data     string
	}
	var uploads []upload
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/file", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		uploads = append(uploads, upload{
			entryID:  r.FormValue("entry_id"),
			filename: header.Filename,
			data:     string(data),
		})
		json.NewEncoder(w).Encode(Commit{CommitID: "c1", Type: CommitTypeFile})
	}))
	defer api.Close()

	c := newTestClient(t, api.URL)
	ch := make(chan Artifact, 2)
	ch <- Artifact{URL: objects.URL + "/loot/dump.bin", Path: "loot/dump.bin", Filename: "dump.bin"}
	ch <- Artifact{URL: objects.URL + "/loot/creds.txt", Path: "loot/creds.txt", Filename: "creds.txt"}
	close(ch)

	c.ImportArtifacts(context.Background(), "e1", ch)

	require.Len(t, uploads, 2)
	assert.Equal(t, "e1", uploads[0].entryID)
	assert.Equal(t, "dump.bin", uploads[0].filename)
	assert.Equal(t, "dump-data", uploads[0].data)
	assert.Equal(t, "creds.txt", uploads[1].filename)
	assert.Equal(t, "creds-data", uploads[1].data)
}

func TestImportArtifactsToleratesFailures(t *testing.T) {
	var uploaded int
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploaded++
		json.NewEncoder(w).Encode(Commit{CommitID: "c1"})
	}))
	defer api.Close()

	objects := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone" {
			w.WriteHeader(404)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer objects.Close()

	c := newTestClient(t, api.URL)
	ch := make(chan Artifact, 2)
	ch <- Artifact{URL: objects.URL + "/gone", Path: "gone", Filename: "gone"}
	ch <- Artifact{URL: objects.URL + "/fine", Path: "fine", Filename: "fine"}
	close(ch)

	c.ImportArtifacts(context.Background(), "e1", ch)
	require.Equal(t, 1, uploaded)
}
