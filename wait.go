package pageobject

import (
	"errors"
	"time"
)

// DefaultPollInterval is how often WaitForIsDisplayed re-checks an element.
const DefaultPollInterval = 500 * time.Millisecond

// DefaultWaitTimeout bounds the explicit waits of page objects unless the
// Base is configured with WaitTimeout.
const DefaultWaitTimeout = 10 * time.Second

var errWaitTimeout = errors.New("timeout waiting for condition")

// condition is checked repeatedly by wait until it returns true or an
// error.
type condition func() (bool, error)

// wait polls cond every interval until it is satisfied, returns an error,
// or timeout elapses. The condition is checked at least once, and once more
// at the deadline when the last interval would overshoot it.
func wait(cond condition, timeout, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	deadline := time.Now().Add(timeout)
	for {
		done, err := cond()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		left := time.Until(deadline)
		if left <= 0 {
			return errWaitTimeout
		}
		if left < interval {
			time.Sleep(left)
		} else {
			time.Sleep(interval)
		}
	}
}
