// Package login models the login page of the practice application.
package login

import (
	"time"

	"github.com/wanmail/pageobject"
	"github.com/wanmail/pageobject/pages"
)

// Path is where the login page is served, relative to the base URL.
const Path = "/login"

var (
	loginForm      = pageobject.ID("login")
	usernameInput  = pageobject.ID("username")
	passwordInput  = pageobject.ID("password")
	submitButton   = pageobject.CSS("button")
	successMessage = pageobject.CSS(".flash.success")
	failureMessage = pageobject.CSS(".flash.error")
)

// failureWait is how long FailureMessagePresent waits for the banner,
// since the page reloads after a rejected submission.
const failureWait = time.Second

// Page is the login page.
type Page struct {
	*pageobject.Base
}

// New visits the login page and checks that the login form is displayed.
func New(b *pageobject.Base) (*Page, error) {
	if err := b.Visit(Path); err != nil {
		return nil, err
	}
	if err := pages.Expect(b, "login", loginForm); err != nil {
		return nil, err
	}
	return &Page{b}, nil
}

// With fills in the login form and submits it.
func (p *Page) With(username, password string) error {
	if err := p.Type(usernameInput, username); err != nil {
		return err
	}
	if err := p.Type(passwordInput, password); err != nil {
		return err
	}
	return p.Click(submitButton)
}

// SuccessMessagePresent reports whether the "logged in" banner is shown.
func (p *Page) SuccessMessagePresent() (bool, error) {
	return p.IsDisplayed(successMessage)
}

// FailureMessagePresent reports whether the "invalid credentials" banner is
// shown.
func (p *Page) FailureMessagePresent() (bool, error) {
	return p.WaitForIsDisplayed(failureMessage, failureWait)
}

// FailureMessage returns the text of the failure banner.
func (p *Page) FailureMessage() (string, error) {
	return p.Text(failureMessage)
}
