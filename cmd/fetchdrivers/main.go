// Binary fetchdrivers downloads the browser drivers used by local sessions
// into a directory, drivers/ by default.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/golang/glog"
	"github.com/playwright-community/playwright-go"
	"github.com/spf13/pflag"
	"github.com/wanmail/pageobject/internal/download"
)

var (
	dir          = pflag.String("dir", "drivers", "Directory to download the drivers into.")
	browsers     = pflag.StringSlice("browsers", []string{"chrome", "firefox"}, "Browsers to fetch WebDriver binaries for.")
	chromeBuild  = pflag.String("chrome_build", "", "Chromium snapshot build whose ChromeDriver to fetch. Empty means the latest snapshot.")
	sauceConnect = pflag.Bool("sauce_connect", false, "If true, also fetch the Sauce Connect proxy.")
	pw           = pflag.StringSlice("playwright", nil, "Browsers to install for the playwright backend, e.g. chromium,firefox.")
	timeout      = pflag.Duration("timeout", 10*time.Minute, "Give up after this long.")
)

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	defer glog.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var files []download.File
	for _, b := range *browsers {
		switch b {
		case "chrome":
			f, err := download.ChromeDriver(ctx, *chromeBuild)
			if err != nil {
				glog.Exitf("Unable to find ChromeDriver: %v", err)
			}
			files = append(files, f)
		case "firefox":
			f, err := download.Geckodriver(ctx, nil)
			if err != nil {
				glog.Exitf("Unable to find the latest Geckodriver: %v", err)
			}
			files = append(files, f)
		default:
			glog.Exitf("No driver download known for browser %q", b)
		}
	}
	if *sauceConnect {
		files = append(files, download.SauceConnectFile)
	}

	if err := download.All(ctx, files, *dir); err != nil {
		glog.Exit(err)
	}

	if len(*pw) > 0 {
		glog.Infof("Installing playwright browsers %v", *pw)
		if err := playwright.Install(&playwright.RunOptions{Browsers: *pw}); err != nil {
			glog.Exitf("Installing playwright: %v", err)
		}
	}
	glog.Infof("Drivers are in %s", *dir)
}
