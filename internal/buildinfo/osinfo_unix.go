//go:build linux || darwin || freebsd || netbsd || openbsd

package buildinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// operatingSystem returns the kernel name and release, e.g. "Linux", "6.1.0".
func operatingSystem() (string, string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS, "unknown"
	}
	return unix.ByteSliceToString(uts.Sysname[:]), unix.ByteSliceToString(uts.Release[:])
}
