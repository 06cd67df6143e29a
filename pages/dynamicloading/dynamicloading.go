// Package dynamicloading models the pages of the practice application whose
// content appears some time after a button is clicked.
package dynamicloading

import (
	"fmt"
	"time"

	"github.com/wanmail/pageobject"
)

var (
	startButton = pageobject.CSS("#start button")
	finishText  = pageobject.ID("finish")
)

// Option configures a Page.
type Option func(*Page)

// FinishWait bounds how long FinishTextPresent waits for loading to end,
// overriding the wait timeout of the Base.
func FinishWait(d time.Duration) Option {
	return func(p *Page) {
		p.finishWait = d
	}
}

// Page is a dynamic loading example page.
type Page struct {
	*pageobject.Base
	finishWait time.Duration
}

// New returns the page object. It does not navigate: use LoadExample.
func New(b *pageobject.Base, opts ...Option) *Page {
	p := &Page{Base: b, finishWait: b.WaitTimeout()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoadExample opens example n and starts loading.
func (p *Page) LoadExample(n int) error {
	if err := p.Visit(fmt.Sprintf("/dynamic_loading/%d", n)); err != nil {
		return err
	}
	return p.Click(startButton)
}

// FinishTextPresent waits for the loaded content to be displayed.
func (p *Page) FinishTextPresent() (bool, error) {
	return p.WaitForIsDisplayed(finishText, p.finishWait)
}

// FinishText returns the loaded content.
func (p *Page) FinishText() (string, error) {
	return p.Text(finishText)
}
