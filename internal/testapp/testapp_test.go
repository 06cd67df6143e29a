package testapp

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// browser is an HTTP client that keeps cookies and follows redirects.
type browser struct {
	t      *testing.T
	client *http.Client
	base   string
}

func newBrowser(t *testing.T) *browser {
	t.Helper()
	ts := httptest.NewServer(New(Options{LoadDelay: 250 * time.Millisecond}))
	t.Cleanup(ts.Close)
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &browser{t: t, client: &http.Client{Jar: jar}, base: ts.URL}
}

// read returns the final path and body of an OK response.
func (b *browser) read(resp *http.Response, err error) (string, string) {
	b.t.Helper()
	if err != nil {
		b.t.Fatalf("request returned error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b.t.Fatalf("%s status = %d, want %d", resp.Request.URL.Path, resp.StatusCode, http.StatusOK)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		b.t.Fatal(err)
	}
	return resp.Request.URL.Path, string(body)
}

func (b *browser) get(path string) (string, string) {
	b.t.Helper()
	return b.read(b.client.Get(b.base + path))
}

func (b *browser) login(username, password string) (string, string) {
	b.t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	return b.read(b.client.PostForm(b.base+"/authenticate", form))
}

func TestLoginPage(t *testing.T) {
	b := newBrowser(t)
	path, page := b.get("/")
	if path != "/login" {
		t.Errorf("GET / landed on %q, want /login", path)
	}
	for _, want := range []string{`id="login"`, `id="username"`, `id="password"`, `<button`} {
		if !strings.Contains(page, want) {
			t.Errorf("login page does not contain %q", want)
		}
	}
	if strings.Contains(page, `class="flash`) {
		t.Error("login page shows a flash message before any attempt")
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		desc               string
		username, password string
		wantPath           string
		wantFlash          string
	}{
		{"success", Username, Password, "/secure", `class="flash success">` + LoginSuccess},
		{"bad username", "tomsmith-bad", Password, "/login", `class="flash error">` + InvalidUsername},
		{"bad password", Username, "bad", "/login", `class="flash error">` + InvalidPassword},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			b := newBrowser(t)
			path, page := b.login(tc.username, tc.password)
			if path != tc.wantPath {
				t.Errorf("login landed on %q, want %q", path, tc.wantPath)
			}
			if !strings.Contains(page, tc.wantFlash) {
				t.Errorf("page does not contain %q:\n%s", tc.wantFlash, page)
			}

			// Flash messages are shown once.
			if _, page = b.get(tc.wantPath); strings.Contains(page, `class="flash`) {
				t.Error("flash message shown again on reload")
			}
		})
	}
}

func TestSecureRequiresLogin(t *testing.T) {
	b := newBrowser(t)
	path, page := b.get("/secure")
	if path != "/login" {
		t.Errorf("GET /secure landed on %q, want /login", path)
	}
	if !strings.Contains(page, LoginRequired) {
		t.Errorf("page does not contain %q", LoginRequired)
	}

	b.login(Username, Password)
	path, page = b.get("/logout")
	if path != "/login" || !strings.Contains(page, LogoutSuccess) {
		t.Errorf("logout landed on %q without %q", path, LogoutSuccess)
	}
	if path, _ = b.get("/secure"); path != "/login" {
		t.Errorf("GET /secure after logout landed on %q, want /login", path)
	}
}

func TestDynamicLoading(t *testing.T) {
	b := newBrowser(t)
	_, page := b.get("/dynamic_loading/1")
	for _, want := range []string{`<div id="start"><button>`, `<div id="finish" style="display:none">`, "250"} {
		if !strings.Contains(page, want) {
			t.Errorf("example 1 does not contain %q", want)
		}
	}
	if _, page = b.get("/dynamic_loading/2"); strings.Contains(page, `<div id="finish"`) {
		t.Error("example 2 renders the finish element before loading")
	}

	resp, err := b.client.Get(b.base + "/dynamic_loading/3")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /dynamic_loading/3 status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}
