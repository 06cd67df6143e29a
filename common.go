package pageobject

import (
	"fmt"

	"github.com/golang/glog"
)

var debugFlag = false

// SetDebug enables tracing of every driver call made through a Base.
func SetDebug(debug bool) {
	debugFlag = debug
}

func debugLog(format string, args ...interface{}) {
	if !debugFlag {
		return
	}
	glog.InfoDepth(1, fmt.Sprintf(format, args...))
}
