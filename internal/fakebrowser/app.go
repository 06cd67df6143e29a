package fakebrowser

import (
	"time"

	"github.com/wanmail/pageobject"
)

// Credentials accepted by the practice application.
const (
	Username = "tomsmith"
	Password = "SuperSecretPassword!"
)

// PracticeApp returns a Browser modelling the login and dynamic loading
// pages of the practice application. Hidden content on the dynamic loading
// pages appears loadDelay after the start button is clicked.
func PracticeApp(baseURL string, loadDelay time.Duration) *Browser {
	b := New(baseURL)
	b.Pages["/login"] = func() *Page { return loginPage("") }
	b.Pages["/secure"] = securePage
	b.Pages["/dynamic_loading/1"] = func() *Page { return dynamicPage(loadDelay, true) }
	b.Pages["/dynamic_loading/2"] = func() *Page { return dynamicPage(loadDelay, false) }
	return b
}

func loginPage(flashErr string) *Page {
	p := &Page{
		Title: "The Internet",
		Elements: map[pageobject.Locator]*Element{
			pageobject.ID("login"):    {Displayed: true},
			pageobject.ID("username"): {Displayed: true},
			pageobject.ID("password"): {Displayed: true},
		},
	}
	p.Elements[pageobject.CSS("button")] = &Element{
		Text:      "Login",
		Displayed: true,
		OnClick: func(b *Browser, _ *Element) {
			user := p.Elements[pageobject.ID("username")].Value
			pass := p.Elements[pageobject.ID("password")].Value
			switch {
			case user != Username:
				b.page = loginPage("Your username is invalid!")
				b.url = b.BaseURL + "/login"
			case pass != Password:
				b.page = loginPage("Your password is invalid!")
				b.url = b.BaseURL + "/login"
			default:
				b.Load("/secure")
			}
		},
	}
	if flashErr != "" {
		p.Elements[pageobject.CSS(".flash.error")] = &Element{Text: flashErr, Displayed: true}
	}
	return p
}

func securePage() *Page {
	return &Page{
		Title: "The Internet",
		Elements: map[pageobject.Locator]*Element{
			pageobject.CSS(".flash.success"): {Text: "You logged into a secure area!", Displayed: true},
			pageobject.CSS("a[href='/logout']"): {
				Text:      "Logout",
				Displayed: true,
				OnClick: func(b *Browser, _ *Element) {
					b.Load("/login")
				},
			},
		},
	}
}

// dynamicPage models both examples: in the first the finish element is in
// the document but hidden, in the second it is only added once loading
// completes.
func dynamicPage(delay time.Duration, hidden bool) *Page {
	finish := pageobject.ID("finish")
	p := &Page{
		Title:    "The Internet",
		Elements: map[pageobject.Locator]*Element{},
	}
	if hidden {
		p.Elements[finish] = &Element{Text: "Hello World!"}
	}
	p.Elements[pageobject.CSS("#start button")] = &Element{
		Text:      "Start",
		Displayed: true,
		OnClick: func(b *Browser, start *Element) {
			start.Displayed = false
			e, ok := p.Elements[finish]
			if !ok {
				e = &Element{Text: "Hello World!"}
			}
			e.RevealAfter(delay)
			p.Elements[finish] = e
		},
	}
	return p
}
