package pageobject

import "fmt"

// Strategy is a method by which to find elements. The values are the
// "using" strings of the WebDriver protocol.
type Strategy string

// Methods by which to find elements.
const (
	ByID              Strategy = "id"
	ByXPATH           Strategy = "xpath"
	ByLinkText        Strategy = "link text"
	ByPartialLinkText Strategy = "partial link text"
	ByName            Strategy = "name"
	ByTagName         Strategy = "tag name"
	ByClassName       Strategy = "class name"
	ByCSSSelector     Strategy = "css selector"
)

var strategies = map[Strategy]bool{
	ByID:              true,
	ByXPATH:           true,
	ByLinkText:        true,
	ByPartialLinkText: true,
	ByName:            true,
	ByTagName:         true,
	ByClassName:       true,
	ByCSSSelector:     true,
}

// Locator identifies how to find an element on a page. Page objects declare
// their locators once, as package-level values, and never modify them.
type Locator struct {
	By    Strategy
	Value string
}

// ID returns a locator matching the element with the given id attribute.
func ID(id string) Locator { return Locator{ByID, id} }

// CSS returns a locator matching a CSS selector.
func CSS(selector string) Locator { return Locator{ByCSSSelector, selector} }

// XPath returns a locator matching an XPath expression.
func XPath(expr string) Locator { return Locator{ByXPATH, expr} }

// Name returns a locator matching the name attribute.
func Name(name string) Locator { return Locator{ByName, name} }

// LinkText returns a locator matching an anchor by its exact text.
func LinkText(text string) Locator { return Locator{ByLinkText, text} }

// ClassName returns a locator matching a single class name.
func ClassName(class string) Locator { return Locator{ByClassName, class} }

// TagName returns a locator matching an element name.
func TagName(tag string) Locator { return Locator{ByTagName, tag} }

// Valid reports whether the locator has a known strategy and a value.
func (l Locator) Valid() bool {
	return strategies[l.By] && l.Value != ""
}

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.By, l.Value)
}
