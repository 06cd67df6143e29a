// Binary logincheck logs into the configured application through the login
// page object, saves a screenshot of the result and exits non-zero when the
// login does not succeed. It is a smoke test for a session configuration.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
	"github.com/wanmail/pageobject/config"
	"github.com/wanmail/pageobject/pages/login"
	"github.com/wanmail/pageobject/session"
)

var (
	configFile = pflag.String("config", "pageobject.yaml", "Configuration file. Missing files fall back to defaults and the environment.")
	username   = pflag.String("username", "tomsmith", "Username to log in with.")
	password   = pflag.String("password", "SuperSecretPassword!", "Password to log in with.")
	screenshot = pflag.String("screenshot", "logincheck.png", "Where to write the screenshot. Empty disables it.")
)

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configFile)
	if err != nil {
		glog.Exit(err)
	}
	s, err := session.Open(cfg, "logincheck")
	if err != nil {
		glog.Exitf("Opening session: %v", err)
	}

	err = run(s)
	if closeErr := s.Close(err == nil); closeErr != nil {
		glog.Warningf("Closing session: %v", closeErr)
	}
	if err != nil {
		glog.Exit(err)
	}
	glog.Infof("Logged into %s as %s", cfg.BaseURL, *username)
}

func run(s *session.Session) error {
	p, err := login.New(s.Base)
	if err != nil {
		return err
	}
	if err := p.With(*username, *password); err != nil {
		return err
	}
	ok, err := p.SuccessMessagePresent()
	if title, titleErr := s.Browser.Title(); titleErr == nil {
		glog.Infof("Landed on %q", title)
	}

	if *screenshot != "" {
		data, shotErr := s.Browser.Screenshot()
		if shotErr != nil {
			glog.Warningf("Taking screenshot: %v", shotErr)
		} else if shotErr := os.WriteFile(*screenshot, data, 0644); shotErr != nil {
			glog.Warningf("Writing %s: %v", *screenshot, shotErr)
		} else {
			glog.Infof("Screenshot written to %s", *screenshot)
		}
	}

	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("login as %q failed: no success message", *username)
	}
	return nil
}
