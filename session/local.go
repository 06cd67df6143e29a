package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
	"github.com/wanmail/pageobject/config"
	"github.com/wanmail/pageobject/internal/hostutil"
	"github.com/wanmail/pageobject/webdriver"
)

// DriverPath returns the newest driver binary for browser in dir, or "" if
// none is installed.
func DriverPath(dir, browser string) string {
	var glob string
	switch browser {
	case "chrome":
		glob = "chromedriver*"
	case "firefox":
		glob = "geckodriver*"
	default:
		return ""
	}
	return hostutil.FindBest(filepath.Join(dir, glob), true)
}

func openLocal(cfg *config.Config, name string) (*Session, error) {
	if cfg.BrowserName != "chrome" && cfg.BrowserName != "firefox" {
		return nil, fmt.Errorf("local selenium sessions support chrome and firefox, not %q", cfg.BrowserName)
	}
	path := DriverPath(cfg.DriverDir, cfg.BrowserName)
	if path == "" {
		return nil, fmt.Errorf("%w: no %s driver in %q", ErrDriverNotFound, cfg.BrowserName, cfg.DriverDir)
	}

	var opts []selenium.ServiceOption
	if cfg.FrameBuffer {
		opts = append(opts, selenium.StartFrameBuffer())
	}
	if cfg.Debug {
		opts = append(opts, selenium.Output(os.Stderr))
	}

	port, err := hostutil.FreePort()
	if err != nil {
		return nil, fmt.Errorf("picking a driver port: %v", err)
	}

	caps := selenium.Capabilities{"browserName": cfg.BrowserName}
	var (
		svc  *selenium.Service
		addr string
	)
	switch cfg.BrowserName {
	case "chrome":
		var args []string
		if cfg.Headless {
			args = append(args, "--headless", "--no-sandbox", "--disable-gpu")
		}
		caps.AddChrome(chrome.Capabilities{Args: args, W3C: true})
		svc, err = selenium.NewChromeDriverService(path, port, opts...)
		addr = fmt.Sprintf("http://127.0.0.1:%d/wd/hub", port)
	case "firefox":
		var args []string
		if cfg.Headless {
			args = append(args, "-headless")
		}
		caps.AddFirefox(firefox.Capabilities{Args: args})
		svc, err = selenium.NewGeckoDriverService(path, port, opts...)
		addr = fmt.Sprintf("http://127.0.0.1:%d", port)
	}
	if err != nil {
		return nil, fmt.Errorf("starting %s: %v", path, err)
	}

	glog.V(1).Infof("Opening local %s session %q through %s", cfg.BrowserName, name, path)
	wd, err := selenium.NewRemote(caps, addr)
	if err != nil {
		if stopErr := svc.Stop(); stopErr != nil {
			glog.Warningf("Stopping %s: %v", path, stopErr)
		}
		return nil, fmt.Errorf("connecting to %s: %w", path, err)
	}
	return New(cfg, name, webdriver.New(wd), svc.Stop), nil
}
