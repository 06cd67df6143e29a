package pageobject

import "errors"

// ErrNoSuchElement is returned, possibly wrapped, by Browser.Find when no
// element matches the locator.
var ErrNoSuchElement = errors.New("no such element")

// Browser is a single driver session. Implementations translate locators
// into the native query of their driver and must wrap "element not found"
// failures so that errors.Is(err, ErrNoSuchElement) holds.
type Browser interface {
	// Visit navigates to an absolute URL.
	Visit(url string) error
	// Find returns the first element matching l.
	Find(l Locator) (Element, error)
	// Title returns the current page's title.
	Title() (string, error)
	// CurrentURL returns the URL the browser is currently on.
	CurrentURL() (string, error)
	// Screenshot returns a PNG of the current viewport.
	Screenshot() ([]byte, error)
	// ExecuteScript runs a script in the page. Remote grids use it to
	// receive job annotations.
	ExecuteScript(script string) error
	// Quit ends the session and closes the browser.
	Quit() error
}

// Element is a handle to an element found on the current page.
type Element interface {
	Click() error
	SendKeys(keys string) error
	Text() (string, error)
	IsDisplayed() (bool, error)
}
