package miniopt

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// maxErrorLen bounds the length of a session error message in bytes.
const maxErrorLen = 128

// ErrorType represents the category of a parse failure.
type ErrorType string

const (
	ErrorTypeMissingArgument ErrorType = "missing_argument"
	ErrorTypeUnknownOption   ErrorType = "unknown_option"
	ErrorTypeClusterOption   ErrorType = "cluster_option"
	ErrorTypeInvalidTable    ErrorType = "invalid_table"
)

// Sentinel errors matched by errors.Is against a *ParseError of the same type.
var (
	ErrMissingArgument = errors.New("option argument is missing")
	ErrUnknownOption   = errors.New("option is unknown")
	ErrClusterOption   = errors.New("option cluster has error")
	ErrInvalidTable    = errors.New("invalid option table")
)

// ParseError is the terminal error of a session, or a table validation failure.
type ParseError struct {
	Type    ErrorType
	Message string // Bounded human readable message
	Token   string // Offending argument, untruncated
	// Option is the table index involved in the error. It is the index of the
	// option lacking its argument for ErrorTypeMissingArgument, the bad entry
	// for ErrorTypeInvalidTable and the table length otherwise.
	Option     int
	Suggestion string // Closest long option, e.g. "--verbose", when one exists
}

func (e *ParseError) Error() string {
	return e.Message
}

// Is reports whether target is the sentinel error for the error's type.
func (e *ParseError) Is(target error) bool {
	switch e.Type {
	case ErrorTypeMissingArgument:
		return target == ErrMissingArgument
	case ErrorTypeUnknownOption:
		return target == ErrUnknownOption
	case ErrorTypeClusterOption:
		return target == ErrClusterOption
	case ErrorTypeInvalidTable:
		return target == ErrInvalidTable
	}
	return false
}

// concat joins up to three fragments into at most size bytes. A message that
// would overflow is cut at the last complete rune that fits.
func concat(size int, fragments ...string) string {
	var b strings.Builder
	b.Grow(size)
	for _, s := range fragments[:min(len(fragments), 3)] {
		if b.Len()+len(s) > size {
			s = truncateRunes(s, size-b.Len())
			b.WriteString(s)
			break
		}
		b.WriteString(s)
	}
	return b.String()
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
