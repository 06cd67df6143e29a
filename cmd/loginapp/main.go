// Binary loginapp serves the practice pages used by the page objects, so
// browser tests can target a local server:
//
//	loginapp --addr=:8080 &
//	PAGEOBJECT_BASE_URL=http://localhost:8080 go test ./harness
package main

import (
	"flag"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
	"github.com/spf13/pflag"
	"github.com/wanmail/pageobject/internal/testapp"
)

var (
	addr      = pflag.String("addr", ":8080", "Address to listen on.")
	loadDelay = pflag.Duration("load_delay", 5*time.Second, "How long the dynamic loading examples take.")
)

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	defer glog.Flush()

	gin.SetMode(gin.ReleaseMode)
	r := testapp.New(testapp.Options{LoadDelay: *loadDelay})
	glog.Infof("Listening on %s", *addr)
	if err := r.Run(*addr); err != nil {
		glog.Exit(err)
	}
}
