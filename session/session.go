// Package session creates and releases the browser session behind a test:
// a local driver service, a remote Selenium grid such as Sauce Labs, or a
// Playwright browser.
package session

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/tebeka/selenium"
	"github.com/wanmail/pageobject"
	"github.com/wanmail/pageobject/config"
	"github.com/wanmail/pageobject/grid"
	"github.com/wanmail/pageobject/webdriver"
)

// ErrDriverNotFound is returned by Open when the local driver binary or
// browser runtime needed for a session is not installed.
var ErrDriverNotFound = errors.New("browser driver not found")

// Session is one browser session together with the local processes it
// depends on.
type Session struct {
	Browser pageobject.Browser
	Base    *pageobject.Base
	Config  *config.Config
	Name    string

	reportResult bool
	release      []func() error
	closed       bool
}

// New wraps an already connected browser. release functions run in reverse
// order on Close, after the browser has quit.
func New(cfg *config.Config, name string, b pageobject.Browser, release ...func() error) *Session {
	var opts []pageobject.Option
	if cfg.PollInterval > 0 {
		opts = append(opts, pageobject.PollInterval(cfg.PollInterval))
	}
	if cfg.WaitTimeout > 0 {
		opts = append(opts, pageobject.WaitTimeout(cfg.WaitTimeout))
	}
	return &Session{
		Browser:      b,
		Base:         pageobject.NewBase(b, cfg.BaseURL, opts...),
		Config:       cfg,
		Name:         name,
		reportResult: cfg.Host == config.SauceLabs && cfg.Backend == config.Selenium,
		release:      release,
	}
}

// Open starts a session described by cfg. name identifies the session on
// remote grids, usually the name of the test.
func Open(cfg *config.Config, name string) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pageobject.SetDebug(cfg.Debug)
	selenium.SetDebug(cfg.Debug)

	if cfg.Backend == config.Playwright {
		b, release, err := openPlaywright(cfg)
		if err != nil {
			return nil, err
		}
		return New(cfg, name, b, release...), nil
	}
	if cfg.Host == config.Localhost {
		return openLocal(cfg, name)
	}
	return openRemote(cfg, name)
}

func openRemote(cfg *config.Config, name string) (*Session, error) {
	addr, err := grid.Addr(cfg)
	if err != nil {
		return nil, err
	}
	caps, err := grid.Capabilities(cfg, name)
	if err != nil {
		return nil, err
	}

	tunnel, err := grid.StartTunnel(cfg, cfg.Debug)
	if err != nil {
		return nil, err
	}
	if tunnel != nil {
		addr = tunnel.Addr()
	}

	glog.V(1).Infof("Opening %s session %q on %s", cfg.BrowserName, name, cfg.Host)
	wd, err := selenium.NewRemote(caps, addr)
	if err != nil {
		if stopErr := tunnel.Stop(); stopErr != nil {
			glog.Warningf("Stopping Sauce Connect: %v", stopErr)
		}
		return nil, fmt.Errorf("connecting to %s: %w", cfg.Host, err)
	}
	if tunnel == nil {
		return New(cfg, name, webdriver.New(wd)), nil
	}
	return New(cfg, name, webdriver.New(wd), tunnel.Stop), nil
}

// Close ends the session. On Sauce Labs the outcome of the test is reported
// first so that the job shows as passed or failed. Closing an already closed
// session does nothing.
func (s *Session) Close(passed bool) error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.reportResult {
		result := "failed"
		if passed {
			result = "passed"
		}
		if err := s.Browser.ExecuteScript("sauce:job-result=" + result); err != nil {
			errs = append(errs, fmt.Errorf("reporting job result: %w", err))
		}
	}
	if err := s.Browser.Quit(); err != nil {
		errs = append(errs, fmt.Errorf("quitting browser: %w", err))
	}
	for i := len(s.release) - 1; i >= 0; i-- {
		if err := s.release[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
