//go:build !windows

package optio

import (
	stdio "io"
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	if _, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
		return true
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func enableVirtualTerminal(stdio.Writer) bool { return true }

func goos() string { return runtime.GOOS }
