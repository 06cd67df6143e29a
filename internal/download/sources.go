package download

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path"
	"regexp"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/blang/semver"
	"github.com/google/go-github/v27/github"
	"google.golang.org/api/option"
)

// SauceConnectFile is the Sauce Connect proxy for Linux. It unpacks to
// sauce-connect/bin/sc.
var SauceConnectFile = File{
	url:    "https://saucelabs.com/downloads/sc-4.5.4-linux.tar.gz",
	Name:   "sauce-connect.tar.gz",
	Rename: []string{"sc-4.5.4-linux", "sauce-connect"},
}

const (
	// Bucket URL: https://console.cloud.google.com/storage/browser/chromium-browser-snapshots
	chromeBucket         = "chromium-browser-snapshots"
	chromePrefix         = "Linux_x64"
	chromeLastChange     = "Linux_x64/LAST_CHANGE"
	chromeDriverArchive  = "chromedriver_linux64.zip"
	chromeDriverBinary   = "chromedriver_linux64/chromedriver"
	geckodriverAssetExpr = `^geckodriver-.*linux64\.tar\.gz$`
)

// ChromeDriver describes the ChromeDriver build published alongside the
// Chromium snapshot build. An empty build selects the latest snapshot.
func ChromeDriver(ctx context.Context, build string) (File, error) {
	client, err := storage.NewClient(ctx, option.WithHTTPClient(http.DefaultClient))
	if err != nil {
		return File{}, fmt.Errorf("cannot create a storage client for downloading chromedriver: %v", err)
	}
	defer client.Close()
	gcsPath := fmt.Sprintf("gs://%s/", chromeBucket)

	bkt := client.Bucket(chromeBucket)
	if build == "" {
		r, err := bkt.Object(chromeLastChange).NewReader(ctx)
		if err != nil {
			return File{}, fmt.Errorf("cannot create a reader for %s%s file: %v", gcsPath, chromeLastChange, err)
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			return File{}, fmt.Errorf("cannot read from %s%s file: %v", gcsPath, chromeLastChange, err)
		}
		build = strings.TrimSpace(string(data))
	}

	object := path.Join(chromePrefix, build, chromeDriverArchive)
	attrs, err := bkt.Object(object).Attrs(ctx)
	if err != nil {
		return File{}, fmt.Errorf("cannot get the chromedriver package %s%s attrs: %v", gcsPath, object, err)
	}
	return File{
		url:      attrs.MediaLink,
		Name:     "chromedriver.zip",
		hash:     hex.EncodeToString(attrs.MD5),
		hashType: "md5",
		Rename:   []string{chromeDriverBinary, "chromedriver-" + build},
	}, nil
}

// Geckodriver describes the Linux build from the latest geckodriver release.
// A nil client uses the public GitHub API.
func Geckodriver(ctx context.Context, client *github.Client) (File, error) {
	if client == nil {
		client = github.NewClient(nil)
	}
	rel, _, err := client.Repositories.GetLatestRelease(ctx, "mozilla", "geckodriver")
	if err != nil {
		return File{}, err
	}
	version, err := semver.ParseTolerant(rel.GetTagName())
	if err != nil {
		return File{}, fmt.Errorf("geckodriver release tag %q is not a version: %v", rel.GetTagName(), err)
	}

	re := regexp.MustCompile(geckodriverAssetExpr)
	for _, a := range rel.Assets {
		if !re.MatchString(a.GetName()) {
			continue
		}
		u := a.GetBrowserDownloadURL()
		if u == "" {
			return File{}, fmt.Errorf("%s does not have a download URL", a.GetName())
		}
		return File{
			url:    u,
			Name:   "geckodriver.tar.gz",
			Rename: []string{"geckodriver", "geckodriver-" + version.String()},
		}, nil
	}
	return File{}, fmt.Errorf("no Linux asset in geckodriver release %s at https://github.com/mozilla/geckodriver/releases", rel.GetTagName())
}
