package miniopt

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoShort marks an option without a short name.
const NoShort rune = 0

// MaxLongName is the longest long option name accepted by Validate, in bytes.
const MaxLongName = 32

// Option describes one recognized command-line option.
//
// An option is identified in parse results by its index in the table passed
// to NewSession. At least one of Short and Long must be set.
type Option struct {
	Short       rune   // Short name used as -x, or NoShort
	Long        string // Long name used as --name, or ""
	ArgHint     string // Non-empty when the option requires an argument, e.g. "<file>"
	Description string // Free text shown by WriteOptions
}

// HasArg reports whether the option requires an argument.
func (o Option) HasArg() bool { return o.ArgHint != "" }

// String renders the option the way a user would type it, e.g. "-o, --out <file>".
func (o Option) String() string {
	var b strings.Builder
	if o.Short != NoShort {
		b.WriteByte('-')
		b.WriteRune(o.Short)
	}
	if o.Long != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("--")
		b.WriteString(o.Long)
	}
	if o.HasArg() {
		b.WriteByte(' ')
		b.WriteString(o.ArgHint)
	}
	return b.String()
}

// Validate checks the table invariants the parser relies on. It returns a
// *ParseError of type ErrorTypeInvalidTable describing the first bad entry.
// Duplicated names are not reported; the first entry wins at parse time.
func Validate(table []Option) error {
	for i, opt := range table {
		if msg := checkOption(opt); msg != "" {
			return &ParseError{
				Type:    ErrorTypeInvalidTable,
				Message: "option index = " + strconv.Itoa(i) + ", " + msg,
				Option:  i,
			}
		}
	}
	return nil
}

func checkOption(opt Option) string {
	if opt.Short == NoShort && opt.Long == "" {
		return "both short and long name cannot be empty"
	}
	switch opt.Short {
	case NoShort:
	case '-':
		return "character [-] cannot be used as short option"
	case '=':
		return "character [=] cannot be used as short option"
	case utf8.RuneError:
		return "short option is not a valid character"
	default:
		if !unicode.IsPrint(opt.Short) || unicode.IsSpace(opt.Short) {
			return "short option " + strconv.QuoteRune(opt.Short) + " is not printable"
		}
	}
	if opt.Long == "" {
		return ""
	}
	switch {
	case opt.Long[0] == '-':
		return "character [-] cannot be long option's first char"
	case strings.ContainsRune(opt.Long, '='):
		return "character [=] cannot be used in long option"
	case strings.IndexFunc(opt.Long, unicode.IsSpace) >= 0:
		return "long option " + strconv.Quote(opt.Long) + " contains whitespace"
	case len(opt.Long) > MaxLongName:
		return "long option is longer than " + strconv.Itoa(MaxLongName) + " bytes"
	case !utf8.ValidString(opt.Long):
		return "long option is not valid UTF-8"
	}
	return ""
}
