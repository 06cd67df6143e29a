// Package grid describes remote browser sessions: where the WebDriver
// endpoint lives and which capabilities to request from it.
package grid

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang/glog"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/sauce"
	"github.com/wanmail/pageobject/config"
	"github.com/wanmail/pageobject/internal/hostutil"
)

// Addr returns the WebDriver endpoint for cfg. It is empty for localhost,
// where the endpoint belongs to a locally started driver service.
func Addr(cfg *config.Config) (string, error) {
	switch cfg.Host {
	case config.SauceLabs:
		u, err := url.Parse(sauce.Addr(cfg.SauceUsername, cfg.SauceAccessKey))
		if err != nil {
			return "", fmt.Errorf("building Sauce Labs address: %v", err)
		}
		u.Host = u.Hostname() + ":80"
		return u.String(), nil
	case config.Grid:
		return cfg.GridURL, nil
	case config.Localhost:
		return "", nil
	}
	return "", fmt.Errorf("unknown host %q", cfg.Host)
}

// Capabilities returns the capabilities requested for a remote session
// named testName. Sauce Labs sessions also carry the build tag.
func Capabilities(cfg *config.Config, testName string) (selenium.Capabilities, error) {
	caps := selenium.Capabilities{"browserName": cfg.BrowserName}
	if !cfg.Remote() {
		return caps, nil
	}

	sc := &sauce.Capabilities{
		TestName: testName,
		Platform: cfg.PlatformName,
	}
	if cfg.BrowserVersion != config.LatestVersion {
		sc.Version = cfg.BrowserVersion
	}
	if cfg.Host == config.SauceLabs {
		sc.BuildNumber = cfg.Build
	}
	m, err := sc.ToMap()
	if err != nil {
		return nil, fmt.Errorf("encoding capabilities: %v", err)
	}
	for k, v := range m {
		caps[k] = v
	}
	return caps, nil
}

// Tunnel is a Sauce Connect proxy through which Sauce Labs browsers reach
// hosts visible only from this machine.
type Tunnel struct {
	sc *sauce.Connect
}

// StartTunnel starts Sauce Connect when cfg targets Sauce Labs and names a
// proxy binary. It returns a nil Tunnel otherwise.
func StartTunnel(cfg *config.Config, verbose bool) (*Tunnel, error) {
	if cfg.Host != config.SauceLabs || cfg.SauceConnect == "" {
		return nil, nil
	}
	port, err := hostutil.FreePort()
	if err != nil {
		return nil, fmt.Errorf("picking a port for Sauce Connect: %v", err)
	}
	sc := &sauce.Connect{
		Path:                cfg.SauceConnect,
		UserName:            cfg.SauceUsername,
		AccessKey:           cfg.SauceAccessKey,
		SeleniumPort:        port,
		ExtraVerbose:        verbose,
		QuitProcessUponExit: true,
	}
	glog.Infof("Starting Sauce Connect %s on port %d", cfg.SauceConnect, port)
	if err := sc.Start(); err != nil {
		return nil, fmt.Errorf("starting Sauce Connect %q: %v", cfg.SauceConnect, err)
	}
	return &Tunnel{sc: sc}, nil
}

// Addr returns the WebDriver endpoint exposed by the tunnel.
func (t *Tunnel) Addr() string {
	return t.sc.Addr()
}

// Stop terminates the proxy. Stopping a nil Tunnel is a no-op.
func (t *Tunnel) Stop() error {
	if t == nil {
		return nil
	}
	if t.sc == nil {
		return errors.New("tunnel already stopped")
	}
	err := t.sc.Stop()
	t.sc = nil
	return err
}
