// Package webdriver adapts a Selenium WebDriver session to the
// pageobject.Browser interface.
package webdriver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tebeka/selenium"
	"github.com/wanmail/pageobject"
)

// noSuchElement is the error string used by both the W3C protocol and the
// legacy JSON wire protocol (status 7).
const noSuchElement = "no such element"

// Browser is a pageobject.Browser backed by a WebDriver session.
type Browser struct {
	wd selenium.WebDriver
}

// New wraps wd.
func New(wd selenium.WebDriver) *Browser {
	return &Browser{wd: wd}
}

// WebDriver returns the wrapped session.
func (b *Browser) WebDriver() selenium.WebDriver {
	return b.wd
}

// IsNoSuchElement reports whether err is the driver's "element not found"
// failure.
func IsNoSuchElement(err error) bool {
	if err == nil {
		return false
	}
	var se *selenium.Error
	if errors.As(err, &se) {
		return se.Err == noSuchElement || se.LegacyCode == 7
	}
	return strings.HasPrefix(err.Error(), noSuchElement)
}

func (b *Browser) Visit(url string) error {
	return b.wd.Get(url)
}

func (b *Browser) Find(l pageobject.Locator) (pageobject.Element, error) {
	e, err := b.wd.FindElement(string(l.By), l.Value)
	if IsNoSuchElement(err) {
		return nil, fmt.Errorf("%w: %v", pageobject.ErrNoSuchElement, err)
	}
	if err != nil {
		return nil, err
	}
	return &element{e}, nil
}

func (b *Browser) Title() (string, error) {
	return b.wd.Title()
}

func (b *Browser) CurrentURL() (string, error) {
	return b.wd.CurrentURL()
}

func (b *Browser) Screenshot() ([]byte, error) {
	return b.wd.Screenshot()
}

func (b *Browser) ExecuteScript(script string) error {
	_, err := b.wd.ExecuteScript(script, nil)
	return err
}

func (b *Browser) Quit() error {
	return b.wd.Quit()
}

type element struct {
	selenium.WebElement
}

// IsDisplayed maps a reference to an element that has since been removed
// from the document to pageobject.ErrNoSuchElement.
func (e *element) IsDisplayed() (bool, error) {
	shown, err := e.WebElement.IsDisplayed()
	if IsNoSuchElement(err) || isStale(err) {
		return false, fmt.Errorf("%w: %v", pageobject.ErrNoSuchElement, err)
	}
	return shown, err
}

func isStale(err error) bool {
	if err == nil {
		return false
	}
	var se *selenium.Error
	if errors.As(err, &se) {
		return se.Err == "stale element reference" || se.LegacyCode == 10
	}
	return strings.HasPrefix(err.Error(), "stale element reference")
}
