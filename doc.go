/*
Package pageobject provides the building blocks for writing browser tests
with the Page Object pattern.

A page object models one page of the application under test. It keeps the
locators of the elements it cares about and exposes the actions a test
performs on that page. Page objects never talk to the browser driver
directly: they embed a *Base, which centralizes the handful of primitives
(visit, find, click, type, check visibility) every page needs.

The driver itself sits behind the Browser interface. The webdriver package
adapts a Selenium WebDriver session and the pwdriver package adapts a
Playwright page, so the same page objects run against either.

Example usage:

	// Errors are ignored for brevity.

	func TestLogin(t *testing.T) {
		s := harness.Open(t)

		p, err := login.New(s.Base)
		if err != nil {
			t.Fatal(err)
		}
		p.With("tomsmith", "SuperSecretPassword!")

		if ok, _ := p.SuccessMessagePresent(); !ok {
			t.Error("success message not displayed")
		}
	}

The session package creates the browser session, either locally from the
driver binaries fetched by cmd/fetchdrivers or on a remote grid such as
Sauce Labs, and the harness package ties its lifetime to a test.
*/
package pageobject
