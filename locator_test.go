package pageobject

import "testing"

func TestLocator(t *testing.T) {
	tests := []struct {
		desc  string
		in    Locator
		str   string
		valid bool
	}{
		{
			desc:  "id",
			in:    ID("username"),
			str:   "id=username",
			valid: true,
		},
		{
			desc:  "css selector",
			in:    CSS(".flash.success"),
			str:   "css selector=.flash.success",
			valid: true,
		},
		{
			desc:  "xpath",
			in:    XPath("//button"),
			str:   "xpath=//button",
			valid: true,
		},
		{
			desc:  "link text",
			in:    LinkText("Logout"),
			str:   "link text=Logout",
			valid: true,
		},
		{
			desc:  "empty value is invalid",
			in:    Name(""),
			str:   "name=",
			valid: false,
		},
		{
			desc:  "unknown strategy is invalid",
			in:    Locator{By: "shadow", Value: "x"},
			str:   "shadow=x",
			valid: false,
		},
		{
			desc:  "zero value is invalid",
			in:    Locator{},
			str:   "=",
			valid: false,
		},
	}

	for _, test := range tests {
		if got, want := test.in.String(), test.str; got != want {
			t.Errorf("%s: String() = %q, want %q", test.desc, got, want)
		}
		if got, want := test.in.Valid(), test.valid; got != want {
			t.Errorf("%s: Valid() = %t, want %t", test.desc, got, want)
		}
	}
}

func TestLocatorIsComparable(t *testing.T) {
	m := map[Locator]int{ID("a"): 1}
	if m[Locator{ByID, "a"}] != 1 {
		t.Fatal("equal locators did not map to the same key")
	}
	if _, ok := m[CSS("a")]; ok {
		t.Fatal("locators with different strategies mapped to the same key")
	}
}
