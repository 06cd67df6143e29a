// Package pwdriver adapts a Playwright page to the pageobject.Browser
// interface.
package pwdriver

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/wanmail/pageobject"
)

// Selector translates a locator into a Playwright selector.
func Selector(l pageobject.Locator) (string, error) {
	v := l.Value
	switch l.By {
	case pageobject.ByCSSSelector:
		return "css=" + v, nil
	case pageobject.ByXPATH:
		return "xpath=" + v, nil
	case pageobject.ByID:
		return fmt.Sprintf("css=[id=%s]", cssQuote(v)), nil
	case pageobject.ByName:
		return fmt.Sprintf("css=[name=%s]", cssQuote(v)), nil
	case pageobject.ByClassName:
		return "css=." + v, nil
	case pageobject.ByTagName:
		return "css=" + v, nil
	case pageobject.ByLinkText:
		return fmt.Sprintf("xpath=//a[normalize-space(.)=%s]", xpathQuote(v)), nil
	case pageobject.ByPartialLinkText:
		return fmt.Sprintf("xpath=//a[contains(., %s)]", xpathQuote(v)), nil
	}
	return "", fmt.Errorf("pwdriver: unsupported locator strategy %q", l.By)
}

func cssQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// xpathQuote returns s as an XPath 1.0 string expression. XPath has no
// escape syntax, so values containing both quote kinds are built with
// concat().
func xpathQuote(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	parts := strings.Split(s, `"`)
	for i, p := range parts {
		parts[i] = `"` + p + `"`
	}
	return "concat(" + strings.Join(parts, `, '"', `) + ")"
}

// Browser is a pageobject.Browser backed by a Playwright page. It owns the
// page; closing the browser and the Playwright driver is left to the caller
// that launched them.
type Browser struct {
	page playwright.Page
}

// New wraps page.
func New(page playwright.Page) *Browser {
	return &Browser{page: page}
}

// Page returns the wrapped page.
func (b *Browser) Page() playwright.Page {
	return b.page
}

func (b *Browser) Visit(url string) error {
	_, err := b.page.Goto(url)
	return err
}

func (b *Browser) Find(l pageobject.Locator) (pageobject.Element, error) {
	sel, err := Selector(l)
	if err != nil {
		return nil, err
	}
	loc := b.page.Locator(sel).First()
	n, err := loc.Count()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", pageobject.ErrNoSuchElement, sel)
	}
	return &element{loc}, nil
}

func (b *Browser) Title() (string, error) {
	return b.page.Title()
}

func (b *Browser) CurrentURL() (string, error) {
	return b.page.URL(), nil
}

func (b *Browser) Screenshot() ([]byte, error) {
	return b.page.Screenshot()
}

func (b *Browser) ExecuteScript(script string) error {
	_, err := b.page.Evaluate(script)
	return err
}

func (b *Browser) Quit() error {
	return b.page.Close()
}

type element struct {
	loc playwright.Locator
}

func (e *element) Click() error {
	return e.loc.Click()
}

func (e *element) SendKeys(keys string) error {
	return e.loc.PressSequentially(keys)
}

func (e *element) Text() (string, error) {
	return e.loc.InnerText()
}

func (e *element) IsDisplayed() (bool, error) {
	return e.loc.IsVisible()
}
