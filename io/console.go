// Package optio provides the console used by the miniopt tool: output
// writers, colour detection and a levelled logger.
package optio

import (
	stdio "io"
	"os"
	"strings"
)

// Console centralizes the tool's writers and terminal capabilities.
type Console struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a console bound to process stdio.
func New() *Console {
	return &Console{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the console for chaining.
func (c *Console) WithIn(r stdio.Reader) *Console { c.in = r; return c }

// WithOut sets the standard output writer and returns the console for chaining.
func (c *Console) WithOut(w stdio.Writer) *Console { c.out = w; return c }

// WithErr sets the standard error writer and returns the console for chaining.
func (c *Console) WithErr(w stdio.Writer) *Console { c.err = w; return c }

// ForceColor forces colour output on, regardless of environment.
func (c *Console) ForceColor() *Console { c.forceColor = true; c.noColor = false; return c }

// NoColor disables colour output, regardless of environment.
func (c *Console) NoColor() *Console { c.noColor = true; c.forceColor = false; return c }

// ColorAuto uses environment heuristics to determine colour support.
func (c *Console) ColorAuto() *Console { c.noColor = false; c.forceColor = false; return c }

func (c *Console) In() stdio.Reader  { return c.in }
func (c *Console) Out() stdio.Writer { return c.out }
func (c *Console) Err() stdio.Writer { return c.err }

// IsTTY reports whether the output writer is a terminal.
func (c *Console) IsTTY() bool {
	f, ok := c.out.(*os.File)
	return ok && isTerminal(f)
}

// IsPiped reports whether the input reader is something other than a terminal.
func (c *Console) IsPiped() bool {
	f, ok := c.in.(*os.File)
	return !ok || !isTerminal(f)
}

// SupportsColor reports whether ANSI escapes should be written.
// NO_COLOR wins over FORCE_COLOR; both win over the terminal check.
func (c *Console) SupportsColor() bool {
	if c.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if c.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !c.IsTTY() || !enableVirtualTerminal(c.out) {
		return false
	}
	term := os.Getenv("TERM")
	return term != "dumb" && (term != "" || goos() == "windows")
}

// ColorLevel returns 0 for none, 1 for 16 colours and 2 for 256 colours.
func (c *Console) ColorLevel() int {
	if !c.SupportsColor() {
		return 0
	}
	if strings.Contains(os.Getenv("TERM"), "256color") || os.Getenv("COLORTERM") != "" {
		return 2
	}
	return 1
}
