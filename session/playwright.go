package session

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/playwright-community/playwright-go"
	"github.com/wanmail/pageobject"
	"github.com/wanmail/pageobject/config"
	"github.com/wanmail/pageobject/pwdriver"
)

func browserType(pw *playwright.Playwright, name string) (playwright.BrowserType, *string, error) {
	switch name {
	case "chromium":
		return pw.Chromium, nil, nil
	case "chrome":
		return pw.Chromium, playwright.String("chrome"), nil
	case "firefox":
		return pw.Firefox, nil, nil
	case "webkit":
		return pw.WebKit, nil, nil
	}
	return nil, nil, fmt.Errorf("playwright does not drive %q", name)
}

// openPlaywright launches a local browser, or connects to the browser server
// listening on GridURL when the host is a grid.
func openPlaywright(cfg *config.Config) (pageobject.Browser, []func() error, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: starting playwright: %v", ErrDriverNotFound, err)
	}
	fail := func(err error) (pageobject.Browser, []func() error, error) {
		if stopErr := pw.Stop(); stopErr != nil {
			glog.Warningf("Stopping playwright: %v", stopErr)
		}
		return nil, nil, err
	}

	bt, channel, err := browserType(pw, cfg.BrowserName)
	if err != nil {
		return fail(err)
	}

	var br playwright.Browser
	if cfg.Host == config.Grid {
		glog.V(1).Infof("Connecting to playwright server %s", cfg.GridURL)
		if br, err = bt.Connect(cfg.GridURL); err != nil {
			return fail(fmt.Errorf("connecting to %s: %w", cfg.GridURL, err))
		}
	} else {
		br, err = bt.Launch(playwright.BrowserTypeLaunchOptions{
			Headless: playwright.Bool(cfg.Headless),
			Channel:  channel,
		})
		if err != nil {
			return fail(fmt.Errorf("%w: launching %s: %v", ErrDriverNotFound, cfg.BrowserName, err))
		}
	}

	page, err := openPage(br)
	if err != nil {
		return fail(err)
	}
	closeBrowser := func() error { return br.Close() }
	return pwdriver.New(page), []func() error{pw.Stop, closeBrowser}, nil
}

// openPage opens the page the session drives, closing br if that fails.
func openPage(br playwright.Browser) (playwright.Page, error) {
	page, err := br.NewPage()
	if err != nil {
		if closeErr := br.Close(); closeErr != nil {
			glog.Warningf("Closing browser: %v", closeErr)
		}
		return nil, fmt.Errorf("opening page: %v", err)
	}
	return page, nil
}
