// Package pages holds what the page objects of this module share.
package pages

import (
	"errors"
	"fmt"

	"github.com/wanmail/pageobject"
)

// ErrNotOnPage is returned by page object constructors when the page they
// model is not the one the browser landed on.
var ErrNotOnPage = errors.New("not on expected page")

// Expect returns ErrNotOnPage, wrapped with the page name, locator and the
// URL the browser is on, unless the element matching l is displayed.
func Expect(b *pageobject.Base, page string, l pageobject.Locator) error {
	ok, err := b.IsDisplayed(l)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	at, err := b.Browser().CurrentURL()
	if err != nil {
		at = fmt.Sprintf("unknown URL (%v)", err)
	}
	return fmt.Errorf("%s: %w: %s not displayed at %s", page, ErrNotOnPage, l, at)
}
