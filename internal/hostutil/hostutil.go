// Package hostutil finds resources on the local machine for driver
// processes: free TCP ports and installed binaries.
package hostutil

import (
	"net"
	"os"
	"path/filepath"
	"sort"

	"github.com/golang/glog"
)

// FreePort returns a TCP port on the loopback interface that was unused at
// the time of the call.
func FreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err := l.Close(); err != nil {
		return 0, err
	}
	return port, nil
}

// FindBest returns the last regular file, in lexical order, matching glob.
// Versioned file names sort newer releases last. With executable set, files
// without an execute bit are ignored. It returns "" when nothing matches.
func FindBest(glob string, executable bool) string {
	matches, err := filepath.Glob(glob)
	if err != nil {
		glog.Warningf("Error globbing %q: %s", glob, err)
		return ""
	}
	sort.Strings(matches)
	for i := len(matches) - 1; i >= 0; i-- {
		path := matches[i]
		fi, err := os.Stat(path)
		if err != nil {
			glog.Warningf("Error statting %q: %s", path, err)
			continue
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		if executable && fi.Mode().Perm()&0111 == 0 {
			continue
		}
		return path
	}
	return ""
}
