// Package download fetches the driver binaries used by local and tunnelled
// browser sessions.
package download

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// File describes how to download a file from the Web.
type File struct {
	url      string
	Name     string
	hash     string
	hashType string // default is sha256
	// Rename, if set, holds the extracted path and the name it is moved to.
	Rename []string
}

// Download fetches file into dir unless a copy with the expected hash is
// already there, extracts archives and applies the rename.
func Download(ctx context.Context, file File, dir string) error {
	dst := filepath.Join(dir, file.Name)
	if file.hash != "" && sameHash(dst, file.hash, file.hashType) {
		glog.Infof("Skipping file %q which has already been downloaded.", file.Name)
	} else {
		glog.Infof("Downloading %q from %q", file.Name, file.url)
		if err := fetch(ctx, file, dst); err != nil {
			return err
		}
	}

	if err := extract(dst, dir); err != nil {
		return err
	}

	if rename := file.Rename; len(rename) == 2 {
		from := filepath.Join(dir, rename[0])
		to := filepath.Join(dir, rename[1])
		glog.Infof("Renaming %q to %q", from, to)
		os.RemoveAll(to) // Ignore error.
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("renaming %q to %q: %v", from, to, err)
		}
	}
	return nil
}

// All downloads files into dir concurrently, creating dir if needed.
func All(ctx context.Context, files []File, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := Download(ctx, file, dir); err != nil {
				return fmt.Errorf("error handling %s: %v", file.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func newHash(hashType string) hash.Hash {
	if strings.ToLower(hashType) == "md5" {
		return md5.New()
	}
	return sha256.New()
}

func fetch(ctx context.Context, file File, dst string) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: error downloading %q: %s", file.Name, file.url, resp.Status)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("error creating %q: %v", dst, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %q: %v", dst, closeErr)
		}
	}()

	w := io.Writer(f)
	h := newHash(file.hashType)
	if file.hash != "" {
		w = io.MultiWriter(f, h)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.url, err)
	}
	if file.hash != "" {
		if got := hex.EncodeToString(h.Sum(nil)); got != file.hash {
			return fmt.Errorf("%s: got hash %q, want %q", file.Name, got, file.hash)
		}
	}
	return nil
}

func sameHash(path, want, hashType string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	h := newHash(hashType)
	if _, err := io.Copy(h, f); err != nil {
		return false
	}
	if sum := hex.EncodeToString(h.Sum(nil)); sum != want {
		glog.Warningf("File %q: got hash %q, expect hash %q", path, sum, want)
		return false
	}
	return true
}

func extract(archive, dir string) error {
	var cmd []string
	switch path.Ext(archive) {
	case ".zip":
		cmd = []string{"unzip", "-o", "-d", dir, archive}
	case ".gz":
		cmd = []string{"tar", "-xzf", archive, "-C", dir}
	default:
		return nil
	}
	glog.Infof("Unzipping %q", archive)
	if out, err := exec.Command(cmd[0], cmd[1:]...).CombinedOutput(); err != nil {
		return fmt.Errorf("error unzipping %q: %v: %s", archive, err, out)
	}
	return nil
}
