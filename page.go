package pageobject

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Option configures a Base.
type Option func(*Base)

// PollInterval sets how often explicit waits re-check their condition.
func PollInterval(d time.Duration) Option {
	return func(b *Base) {
		b.pollInterval = d
	}
}

// WaitTimeout sets the bound page objects use for their explicit waits.
func WaitTimeout(d time.Duration) Option {
	return func(b *Base) {
		b.waitTimeout = d
	}
}

// Base is the facade every page object embeds. Each method is a single
// forwarding call into the Browser.
type Base struct {
	browser      Browser
	baseURL      string
	pollInterval time.Duration
	waitTimeout  time.Duration
}

// NewBase returns a Base that resolves relative paths against baseURL.
func NewBase(b Browser, baseURL string, opts ...Option) *Base {
	base := &Base{
		browser:      b,
		baseURL:      strings.TrimRight(baseURL, "/"),
		pollInterval: DefaultPollInterval,
		waitTimeout:  DefaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(base)
	}
	return base
}

// Browser returns the underlying session, for the rare page that needs a
// primitive the facade does not expose.
func (p *Base) Browser() Browser {
	return p.browser
}

// BaseURL returns the URL that relative paths are resolved against.
func (p *Base) BaseURL() string {
	return p.baseURL
}

// WaitTimeout returns the default bound for explicit waits.
func (p *Base) WaitTimeout() time.Duration {
	return p.waitTimeout
}

// URL resolves path against the base URL. Absolute http(s) URLs are
// returned unchanged.
func (p *Base) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return p.baseURL + path
}

// Visit navigates to path, relative to the base URL unless absolute.
func (p *Base) Visit(path string) error {
	u := p.URL(path)
	debugLog("visit %s", u)
	if err := p.browser.Visit(u); err != nil {
		return fmt.Errorf("visit %q: %w", u, err)
	}
	return nil
}

// Find returns the element matching l.
func (p *Base) Find(l Locator) (Element, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("find %s: invalid locator", l)
	}
	debugLog("find %s", l)
	e, err := p.browser.Find(l)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", l, err)
	}
	return e, nil
}

// Click clicks the element matching l.
func (p *Base) Click(l Locator) error {
	e, err := p.Find(l)
	if err != nil {
		return err
	}
	debugLog("click %s", l)
	if err := e.Click(); err != nil {
		return fmt.Errorf("click %s: %w", l, err)
	}
	return nil
}

// Type sends text to the element matching l.
func (p *Base) Type(l Locator, text string) error {
	e, err := p.Find(l)
	if err != nil {
		return err
	}
	debugLog("type %d chars into %s", len(text), l)
	if err := e.SendKeys(text); err != nil {
		return fmt.Errorf("type into %s: %w", l, err)
	}
	return nil
}

// Text returns the visible text of the element matching l.
func (p *Base) Text(l Locator) (string, error) {
	e, err := p.Find(l)
	if err != nil {
		return "", err
	}
	s, err := e.Text()
	if err != nil {
		return "", fmt.Errorf("text of %s: %w", l, err)
	}
	return s, nil
}

// IsDisplayed reports whether the element matching l is displayed. An
// element that is not on the page is reported as not displayed rather than
// as an error.
func (p *Base) IsDisplayed(l Locator) (bool, error) {
	e, err := p.Find(l)
	if errors.Is(err, ErrNoSuchElement) {
		debugLog("%s not present", l)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	shown, err := e.IsDisplayed()
	if errors.Is(err, ErrNoSuchElement) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("displayed %s: %w", l, err)
	}
	return shown, nil
}

// WaitForIsDisplayed polls IsDisplayed until it reports true or timeout
// elapses, in which case it returns false.
func (p *Base) WaitForIsDisplayed(l Locator, timeout time.Duration) (bool, error) {
	err := wait(func() (bool, error) {
		return p.IsDisplayed(l)
	}, timeout, p.pollInterval)
	if errors.Is(err, errWaitTimeout) {
		debugLog("%s not displayed after %v", l, timeout)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
