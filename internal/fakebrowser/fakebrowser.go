// Package fakebrowser provides an in-memory pageobject.Browser that models
// the practice application served by internal/testapp. Page objects can be
// exercised against it without a browser or driver binary.
package fakebrowser

import (
	"fmt"
	"strings"
	"time"

	"github.com/wanmail/pageobject"
)

// Element is a fake DOM element.
type Element struct {
	Text      string
	Value     string
	Displayed bool
	revealAt  time.Time
	// OnClick runs when the element is clicked.
	OnClick func(b *Browser, e *Element)
	// Err, if set, is returned by every operation on the element.
	Err error
}

// RevealAfter hides the element and schedules it to become displayed after d.
func (e *Element) RevealAfter(d time.Duration) {
	e.Displayed = false
	e.revealAt = time.Now().Add(d)
}

func (e *Element) displayed() bool {
	if e.Displayed {
		return true
	}
	return !e.revealAt.IsZero() && !time.Now().Before(e.revealAt)
}

// Page is a fake document.
type Page struct {
	Title    string
	Elements map[pageobject.Locator]*Element
}

// Browser is an in-memory browser session.
type Browser struct {
	// BaseURL is stripped from visited URLs to find the page to show.
	BaseURL string
	// Pages maps a path (with query string) to the page served there.
	Pages map[string]func() *Page

	// Visits records every URL passed to Visit.
	Visits []string
	// Scripts records every script passed to ExecuteScript.
	Scripts []string
	// Quits counts calls to Quit.
	Quits int
	// FindErr, if set, is returned by every Find call.
	FindErr error
	// QuitErr, if set, is returned by Quit.
	QuitErr error

	url  string
	page *Page
}

// New returns a Browser serving no pages.
func New(baseURL string) *Browser {
	return &Browser{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Pages:   make(map[string]func() *Page),
	}
}

// Page returns the currently loaded page, or nil before the first visit.
func (b *Browser) Page() *Page {
	return b.page
}

// Load replaces the current page without recording a visit, as a form
// submission or redirect would.
func (b *Browser) Load(path string) {
	b.url = b.BaseURL + path
	if newPage, ok := b.Pages[path]; ok {
		b.page = newPage()
		return
	}
	b.page = &Page{Title: "Not Found", Elements: map[pageobject.Locator]*Element{}}
}

func (b *Browser) Visit(url string) error {
	b.Visits = append(b.Visits, url)
	if !strings.HasPrefix(url, b.BaseURL) {
		return fmt.Errorf("fakebrowser: %q is not under %q", url, b.BaseURL)
	}
	b.Load(strings.TrimPrefix(url, b.BaseURL))
	return nil
}

func (b *Browser) Find(l pageobject.Locator) (pageobject.Element, error) {
	if b.FindErr != nil {
		return nil, b.FindErr
	}
	if b.page == nil {
		return nil, fmt.Errorf("%w: %s (no page loaded)", pageobject.ErrNoSuchElement, l)
	}
	e, ok := b.page.Elements[l]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pageobject.ErrNoSuchElement, l)
	}
	return &handle{b, e}, nil
}

func (b *Browser) Title() (string, error) {
	if b.page == nil {
		return "", nil
	}
	return b.page.Title, nil
}

func (b *Browser) CurrentURL() (string, error) {
	return b.url, nil
}

// Screenshot returns the PNG signature; nothing is rendered.
func (b *Browser) Screenshot() ([]byte, error) {
	return []byte("\x89PNG\r\n\x1a\n"), nil
}

func (b *Browser) ExecuteScript(script string) error {
	b.Scripts = append(b.Scripts, script)
	return nil
}

func (b *Browser) Quit() error {
	b.Quits++
	return b.QuitErr
}

type handle struct {
	b *Browser
	e *Element
}

func (h *handle) Click() error {
	if h.e.Err != nil {
		return h.e.Err
	}
	if h.e.OnClick != nil {
		h.e.OnClick(h.b, h.e)
	}
	return nil
}

func (h *handle) SendKeys(keys string) error {
	if h.e.Err != nil {
		return h.e.Err
	}
	h.e.Value += keys
	return nil
}

func (h *handle) Text() (string, error) {
	if h.e.Err != nil {
		return "", h.e.Err
	}
	return h.e.Text, nil
}

func (h *handle) IsDisplayed() (bool, error) {
	if h.e.Err != nil {
		return false, h.e.Err
	}
	return h.e.displayed(), nil
}
