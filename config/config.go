// Package config loads the settings that decide where and how browser
// sessions are created.
//
// Settings are read, lowest precedence first, from built-in defaults, an
// optional YAML file, a .env file in the working directory and the
// environment. Environment variables are the upper-cased keys with a
// PAGEOBJECT_ prefix (PAGEOBJECT_BROWSER_NAME=firefox), except for the Sauce
// Labs credentials, which also honour the names used by Sauce tooling:
// SAUCE_USERNAME and SAUCE_ACCESS_KEY.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Hosts on which a session can run.
const (
	Localhost = "localhost"
	SauceLabs = "saucelabs"
	Grid      = "grid"
)

// Backends that can drive the browser.
const (
	Selenium   = "selenium"
	Playwright = "playwright"
)

// LatestVersion asks a remote grid for the newest browser it has.
const LatestVersion = "latest"

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "PAGEOBJECT"

// Config holds the session settings.
type Config struct {
	Host           string        `mapstructure:"host"`
	Backend        string        `mapstructure:"backend"`
	BrowserName    string        `mapstructure:"browser_name"`
	BrowserVersion string        `mapstructure:"browser_version"`
	PlatformName   string        `mapstructure:"platform_name"`
	BaseURL        string        `mapstructure:"base_url"`
	SauceUsername  string        `mapstructure:"sauce_username"`
	SauceAccessKey string        `mapstructure:"sauce_access_key"`
	SauceConnect   string        `mapstructure:"sauce_connect"`
	GridURL        string        `mapstructure:"grid_url"`
	DriverDir      string        `mapstructure:"driver_dir"`
	Headless       bool          `mapstructure:"headless"`
	FrameBuffer    bool          `mapstructure:"frame_buffer"`
	WaitTimeout    time.Duration `mapstructure:"wait_timeout"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	Build          string        `mapstructure:"build"`
	Debug          bool          `mapstructure:"debug"`
}

// Defaults are the settings used when nothing else is configured: a local
// headless Chrome against the public practice application.
var Defaults = map[string]interface{}{
	"host":             Localhost,
	"backend":          Selenium,
	"browser_name":     "chrome",
	"browser_version":  LatestVersion,
	"platform_name":    "",
	"base_url":         "http://the-internet.herokuapp.com",
	"sauce_username":   "",
	"sauce_access_key": "",
	"sauce_connect":    "",
	"grid_url":         "",
	"driver_dir":       "drivers",
	"headless":         true,
	"frame_buffer":     false,
	"wait_timeout":     "15s",
	"poll_interval":    "500ms",
	"build":            "",
	"debug":            false,
}

var browsers = map[string]map[string]bool{
	Selenium:   {"chrome": true, "firefox": true, "MicrosoftEdge": true, "safari": true, "internet explorer": true},
	Playwright: {"chromium": true, "chrome": true, "firefox": true, "webkit": true},
}

// Load reads the configuration. path names an optional YAML file; an empty
// path or a missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %v", err)
	}

	v := viper.New()
	for k, val := range Defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("sauce_username", EnvPrefix+"_SAUCE_USERNAME", "SAUCE_USERNAME"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("sauce_access_key", EnvPrefix+"_SAUCE_ACCESS_KEY", "SAUCE_ACCESS_KEY"); err != nil {
		return nil, err
	}

	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(abs)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("reading config %q: %v", path, err)
			}
			glog.Warningf("config file %q not found, default settings applied", path)
		}
	}

	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decoding config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the settings describe a session that can be created.
func (c *Config) Validate() error {
	switch c.Host {
	case Localhost:
	case SauceLabs:
		if c.SauceUsername == "" || c.SauceAccessKey == "" {
			return errors.New("host saucelabs requires sauce_username and sauce_access_key (or SAUCE_USERNAME and SAUCE_ACCESS_KEY)")
		}
		if c.Backend != Selenium {
			return fmt.Errorf("host saucelabs supports only the %s backend, got %q", Selenium, c.Backend)
		}
	case Grid:
		if c.GridURL == "" {
			return errors.New("host grid requires grid_url")
		}
	default:
		return fmt.Errorf("unknown host %q: must be one of %s, %s, %s", c.Host, Localhost, SauceLabs, Grid)
	}

	known, ok := browsers[c.Backend]
	if !ok {
		return fmt.Errorf("unknown backend %q: must be %s or %s", c.Backend, Selenium, Playwright)
	}
	if !known[c.BrowserName] {
		return fmt.Errorf("browser %q is not supported by the %s backend", c.BrowserName, c.Backend)
	}

	if _, err := c.Version(); err != nil {
		return err
	}
	if c.BaseURL == "" {
		return errors.New("base_url must be set")
	}
	if c.WaitTimeout < 0 || c.PollInterval < 0 {
		return errors.New("wait_timeout and poll_interval must not be negative")
	}
	return nil
}

// Version parses BrowserVersion. It returns a zero version for "latest" or
// an empty value.
func (c *Config) Version() (semver.Version, error) {
	if c.BrowserVersion == "" || c.BrowserVersion == LatestVersion {
		return semver.Version{}, nil
	}
	v, err := semver.ParseTolerant(c.BrowserVersion)
	if err != nil {
		return semver.Version{}, fmt.Errorf("browser_version %q is neither %q nor a version: %v", c.BrowserVersion, LatestVersion, err)
	}
	return v, nil
}

// Remote reports whether sessions run on a remote grid.
func (c *Config) Remote() bool {
	return c.Host != Localhost
}
