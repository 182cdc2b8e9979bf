package optio

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an ANSI colour: 0-15 map to the basic palette, 16-255 to the
// 256 colour palette.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// NoColorSet marks a style without a foreground colour.
const NoColorSet Color = -1

// Style is a small fluent builder for a foreground colour and attributes.
type Style struct {
	fg              Color
	bold, underline bool
	faint           bool
}

// NewStyle creates an empty style.
func NewStyle() *Style             { return &Style{fg: NoColorSet} }
func (s *Style) Fg(c Color) *Style { s.fg = c; return s }
func (s *Style) Bold() *Style      { s.bold = true; return s }
func (s *Style) Faint() *Style     { s.faint = true; return s }
func (s *Style) Underline() *Style { s.underline = true; return s }

// Sprint returns text wrapped in the style's escapes, or text unchanged when
// the console has no colour support.
func (s *Style) Sprint(c *Console, text string) string {
	level := c.ColorLevel()
	if level == 0 {
		return text
	}
	codes := make([]string, 0, 4)
	if s.bold {
		codes = append(codes, "1")
	}
	if s.faint {
		codes = append(codes, "2")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if code := colorCode(s.fg, level); code != "" {
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

// Sprintf formats with fmt.Sprintf and applies the style.
func (s *Style) Sprintf(c *Console, format string, a ...any) string {
	return s.Sprint(c, fmt.Sprintf(format, a...))
}

func colorCode(c Color, level int) string {
	switch {
	case c < 0 || c > 255:
		return ""
	case c < 8:
		return strconv.Itoa(30 + int(c))
	case c < 16:
		return strconv.Itoa(90 + int(c) - 8)
	case level >= 2:
		return "38;5;" + strconv.Itoa(int(c))
	default:
		return ""
	}
}

// Theme assigns a colour to each log level.
type Theme struct {
	Debug, Info, Success, Warning, Error Color
}

// DefaultTheme uses the bright half of the basic palette.
func DefaultTheme() Theme {
	return Theme{
		Debug:   BrightMagenta,
		Info:    BrightCyan,
		Success: BrightGreen,
		Warning: BrightYellow,
		Error:   BrightRed,
	}
}

func (t Theme) color(level LogLevel) Color {
	switch level {
	case LevelDebug:
		return t.Debug
	case LevelInfo:
		return t.Info
	case LevelSuccess:
		return t.Success
	case LevelWarning:
		return t.Warning
	case LevelError:
		return t.Error
	default:
		return NoColorSet
	}
}
