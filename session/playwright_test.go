package session

import (
	"errors"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// fakeBrowser embeds playwright.Browser; calling a method it does not
// override panics.
type fakeBrowser struct {
	playwright.Browser
	newPageErr error
	closeErr   error
	closes     int
}

func (b *fakeBrowser) NewPage(...playwright.BrowserNewPageOptions) (playwright.Page, error) {
	if b.newPageErr != nil {
		return nil, b.newPageErr
	}
	return nil, nil
}

func (b *fakeBrowser) Close(...playwright.BrowserCloseOptions) error {
	b.closes++
	return b.closeErr
}

func TestOpenPage(t *testing.T) {
	tests := []struct {
		desc       string
		newPageErr error
		closeErr   error
		wantErr    bool
		wantCloses int
	}{
		{"page opens", nil, nil, false, 0},
		{"page fails", errors.New("target closed"), nil, true, 1},
		{"page and close fail", errors.New("target closed"), errors.New("browser gone"), true, 1},
	}
	for _, test := range tests {
		br := &fakeBrowser{newPageErr: test.newPageErr, closeErr: test.closeErr}
		_, err := openPage(br)
		if gotErr := err != nil; gotErr != test.wantErr {
			t.Errorf("%s: openPage() error = %v, want error %t", test.desc, err, test.wantErr)
		}
		if br.closes != test.wantCloses {
			t.Errorf("%s: browser closed %d times, want %d", test.desc, br.closes, test.wantCloses)
		}
	}
}
