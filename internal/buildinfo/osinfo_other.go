//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package buildinfo

import "runtime"

func operatingSystem() (string, string) {
	return runtime.GOOS, "unknown"
}
