// Package pagetest provides scenarios that exercise the page objects of this
// module. They live in a separate package so that every backend, from the
// in-memory fake to a Sauce Labs session, is validated by the same tests.
package pagetest

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/wanmail/pageobject"
	"github.com/wanmail/pageobject/pages"
	"github.com/wanmail/pageobject/pages/dynamicloading"
	"github.com/wanmail/pageobject/pages/login"
)

// Credentials accepted by the practice application.
const (
	Username = "tomsmith"
	Password = "SuperSecretPassword!"
)

// Config describes the backend under test.
type Config struct {
	// Open returns a fresh Base for one test. It is responsible for
	// releasing the session when the test ends.
	Open func(t *testing.T) *pageobject.Base
	// LoadWait bounds how long the dynamic loading scenarios wait. Zero
	// keeps the wait timeout of the Base.
	LoadWait time.Duration
}

func runTest(f func(*testing.T, Config), c Config) func(*testing.T) {
	return func(t *testing.T) {
		f(t, c)
	}
}

// RunLoginTests runs the login page scenarios.
func RunLoginTests(t *testing.T, c Config) {
	t.Run("Succeeded", runTest(testLoginSucceeded, c))
	t.Run("FailedUsername", runTest(testLoginFailedUsername, c))
	t.Run("FailedPassword", runTest(testLoginFailedPassword, c))
	t.Run("NotOnPage", runTest(testLoginNotOnPage, c))
}

// RunDynamicLoadingTests runs the explicit wait scenarios.
func RunDynamicLoadingTests(t *testing.T, c Config) {
	t.Run("HiddenElement", runTest(func(t *testing.T, c Config) { testDynamicLoading(t, c, 1) }, c))
	t.Run("RenderedAfter", runTest(func(t *testing.T, c Config) { testDynamicLoading(t, c, 2) }, c))
}

func newLogin(t *testing.T, c Config) *login.Page {
	p, err := login.New(c.Open(t))
	if err != nil {
		t.Fatalf("login.New() returned error: %v", err)
	}
	return p
}

func testLoginSucceeded(t *testing.T, c Config) {
	p := newLogin(t, c)
	if err := p.With(Username, Password); err != nil {
		t.Fatalf("p.With(%q, %q) returned error: %v", Username, Password, err)
	}
	ok, err := p.SuccessMessagePresent()
	if err != nil {
		t.Fatalf("p.SuccessMessagePresent() returned error: %v", err)
	}
	if !ok {
		t.Fatal("p.SuccessMessagePresent() = false, want true")
	}
}

func testLoginFailedUsername(t *testing.T, c Config) {
	testLoginFailed(t, c, "tomsmith-bad", Password, "Your username is invalid!")
}

func testLoginFailedPassword(t *testing.T, c Config) {
	testLoginFailed(t, c, Username, "bad-password", "Your password is invalid!")
}

func testLoginFailed(t *testing.T, c Config, username, password, wantMessage string) {
	p := newLogin(t, c)
	if err := p.With(username, password); err != nil {
		t.Fatalf("p.With(%q, %q) returned error: %v", username, password, err)
	}
	ok, err := p.FailureMessagePresent()
	if err != nil {
		t.Fatalf("p.FailureMessagePresent() returned error: %v", err)
	}
	if !ok {
		t.Fatal("p.FailureMessagePresent() = false, want true")
	}
	ok, err = p.SuccessMessagePresent()
	if err != nil {
		t.Fatalf("p.SuccessMessagePresent() returned error: %v", err)
	}
	if ok {
		t.Fatal("p.SuccessMessagePresent() = true, want false")
	}

	msg, err := p.FailureMessage()
	if err != nil {
		t.Fatalf("p.FailureMessage() returned error: %v", err)
	}
	// Real pages decorate the banner with a close button.
	if len(msg) > len(wantMessage) {
		msg = msg[:len(wantMessage)]
	}
	if diff := cmp.Diff(wantMessage, msg); diff != "" {
		t.Errorf("p.FailureMessage() returned diff (-want/+got):\n%s", diff)
	}
}

func testLoginNotOnPage(t *testing.T, c Config) {
	b := c.Open(t)
	// Resolve the login path under a prefix the application does not serve.
	elsewhere := pageobject.NewBase(b.Browser(), b.URL("/missing"))
	if _, err := login.New(elsewhere); !errors.Is(err, pages.ErrNotOnPage) {
		t.Fatalf("login.New() off the login page returned error %v, want ErrNotOnPage", err)
	}
}

func testDynamicLoading(t *testing.T, c Config, example int) {
	var opts []dynamicloading.Option
	if c.LoadWait > 0 {
		opts = append(opts, dynamicloading.FinishWait(c.LoadWait))
	}
	p := dynamicloading.New(c.Open(t), opts...)
	if err := p.LoadExample(example); err != nil {
		t.Fatalf("p.LoadExample(%d) returned error: %v", example, err)
	}
	ok, err := p.FinishTextPresent()
	if err != nil {
		t.Fatalf("p.FinishTextPresent() returned error: %v", err)
	}
	if !ok {
		t.Fatal("p.FinishTextPresent() = false, want true")
	}
	text, err := p.FinishText()
	if err != nil {
		t.Fatalf("p.FinishText() returned error: %v", err)
	}
	if want := "Hello World!"; text != want {
		t.Errorf("p.FinishText() = %q, want %q", text, want)
	}
}
