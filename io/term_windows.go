//go:build windows

package optio

import (
	stdio "io"
	"os"
	"runtime"

	"golang.org/x/sys/windows"
)

const enableVirtualTerminalProcessing = 0x0004

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(f.Fd()), &mode) == nil
}

// enableVirtualTerminal switches the console of w into ANSI mode.
func enableVirtualTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	if mode&enableVirtualTerminalProcessing != 0 {
		return true
	}
	return windows.SetConsoleMode(h, mode|enableVirtualTerminalProcessing) == nil
}

func goos() string { return runtime.GOOS }
