// Package harness ties browser sessions to the lifetime of a test.
package harness

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wanmail/pageobject/config"
	"github.com/wanmail/pageobject/session"
)

// ConfigEnv names the environment variable holding the configuration file
// read by Open.
const ConfigEnv = "PAGEOBJECT_CONFIG"

// DefaultConfigFile is read when ConfigEnv is unset. A missing file leaves
// the defaults in place.
const DefaultConfigFile = "pageobject.yaml"

// ConfigPath returns the configuration file Open reads.
func ConfigPath() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	return DefaultConfigFile
}

// Open loads the configuration and opens a session for t. See OpenWith.
func Open(t testing.TB) *session.Session {
	t.Helper()
	cfg, err := config.Load(ConfigPath())
	require.NoError(t, err, "loading configuration")
	return OpenWith(t, cfg)
}

// OpenWith opens a session named after t and closes it when t ends,
// reporting whether t passed. The test is skipped when the driver or browser
// the session needs is not installed.
func OpenWith(t testing.TB, cfg *config.Config) *session.Session {
	t.Helper()
	s, err := session.Open(cfg, t.Name())
	if errors.Is(err, session.ErrDriverNotFound) {
		t.Skipf("Skipping browser test: %v", err)
	}
	require.NoError(t, err, "opening %s session", cfg.BrowserName)

	t.Cleanup(func() {
		if err := s.Close(!t.Failed()); err != nil {
			t.Errorf("closing session: %v", err)
		}
	})
	return s
}
