package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/go-github/v27/github"
)

const content = "#!/bin/sh\necho driver\n"

func sha(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func newServer(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if r.URL.Path != "/driver" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, content)
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestDownload(t *testing.T) {
	srv, requests := newServer(t)
	dir := t.TempDir()
	f := File{url: srv.URL + "/driver", Name: "driver", hash: sha(content)}

	for i := 0; i < 2; i++ {
		if err := Download(context.Background(), f, dir); err != nil {
			t.Fatalf("Download() #%d returned error: %v", i, err)
		}
	}
	got, err := os.ReadFile(filepath.Join(dir, "driver"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("downloaded %q, want %q", got, content)
	}
	if n := atomic.LoadInt32(requests); n != 1 {
		t.Errorf("server saw %d requests, want 1 (second download is skipped)", n)
	}
}

func TestDownloadRename(t *testing.T) {
	srv, _ := newServer(t)
	dir := t.TempDir()
	f := File{url: srv.URL + "/driver", Name: "driver", Rename: []string{"driver", "driver-1.0.0"}}
	if err := Download(context.Background(), f, dir); err != nil {
		t.Fatalf("Download() returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "driver-1.0.0")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
}

func TestDownloadErrors(t *testing.T) {
	srv, _ := newServer(t)
	tests := []struct {
		desc string
		file File
		want string
	}{
		{"hash mismatch", File{url: srv.URL + "/driver", Name: "driver", hash: sha("other")}, "got hash"},
		{"not found", File{url: srv.URL + "/missing", Name: "missing"}, "404"},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			err := Download(context.Background(), tc.file, t.TempDir())
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Download() returned error %v, want one containing %q", err, tc.want)
			}
		})
	}
}

func TestAll(t *testing.T) {
	srv, _ := newServer(t)
	dir := filepath.Join(t.TempDir(), "drivers")
	files := []File{
		{url: srv.URL + "/driver", Name: "a"},
		{url: srv.URL + "/driver", Name: "b"},
	}
	if err := All(context.Background(), files, dir); err != nil {
		t.Fatalf("All() returned error: %v", err)
	}
	for _, f := range files {
		if _, err := os.Stat(filepath.Join(dir, f.Name)); err != nil {
			t.Errorf("%s not downloaded: %v", f.Name, err)
		}
	}

	files = append(files, File{url: srv.URL + "/missing", Name: "c"})
	if err := All(context.Background(), files, dir); err == nil {
		t.Error("All() with a missing file returned nil error")
	}
}

func TestGeckodriver(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/mozilla/geckodriver/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"tag_name": "v0.24.0",
			"assets": [
				{"name": "geckodriver-v0.24.0-macos.tar.gz", "browser_download_url": "https://example.com/macos"},
				{"name": "geckodriver-v0.24.0-linux64.tar.gz", "browser_download_url": "https://example.com/linux64"}
			]
		}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := github.NewClient(nil)
	u, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	client.BaseURL = u

	got, err := Geckodriver(context.Background(), client)
	if err != nil {
		t.Fatalf("Geckodriver() returned error: %v", err)
	}
	want := File{
		url:    "https://example.com/linux64",
		Name:   "geckodriver.tar.gz",
		Rename: []string{"geckodriver", "geckodriver-0.24.0"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(File{}), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Geckodriver() returned diff (-want/+got):\n%s", diff)
	}
}
