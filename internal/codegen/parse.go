// Package codegen turns a plain-text option description into Go source that
// declares a miniopt option table and a dispatch loop over it.
package codegen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dzonerzy/go-miniopt/miniopt"
)

var (
	// ErrEmpty is returned when the description declares no option.
	ErrEmpty = errors.New("no options found")

	// ErrDuplicate is returned when two options share a short or long name.
	ErrDuplicate = errors.New("duplicate option name")
)

// SyntaxError reports a line that starts like an option but matches no
// accepted form.
type SyntaxError struct {
	Line int
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: unmatched option", e.Line)
}

const (
	shortKey  = `([^\-=\s])`
	longKey   = `([^\-=\s][^=\s]{0,31})`
	hint      = `(<\S+)`
	sepComma  = `(?:[\t ]*,[\t ]*|[\t ]+)`
	sepValue  = `(?:[\t ]*=[\t ]*|[\t ]+)`
	sepMaybe  = `(?:[\t ]*=?[\t ]*)`
	describe  = `(?:\s+(.*))?$`
	lineStart = `^\s*`
)

// Forms are tried in order. Each lists the fields its groups capture.
var forms = []struct {
	re     *regexp.Regexp
	fields []field
}{
	// -k,--key=<value>  -k --key <value>
	{regexp.MustCompile(lineStart + `-` + shortKey + sepComma + `--` + longKey + sepValue + hint + describe),
		[]field{fieldShort, fieldLong, fieldHint, fieldDesc}},
	// -k,--key
	{regexp.MustCompile(lineStart + `-` + shortKey + sepComma + `--` + longKey + describe),
		[]field{fieldShort, fieldLong, fieldDesc}},
	// --key=<value>  --key <value>
	{regexp.MustCompile(lineStart + `--` + longKey + sepValue + hint + describe),
		[]field{fieldLong, fieldHint, fieldDesc}},
	// --key
	{regexp.MustCompile(lineStart + `--` + longKey + describe),
		[]field{fieldLong, fieldDesc}},
	// -k<value>  -k=<value>  -k <value>
	{regexp.MustCompile(lineStart + `-` + shortKey + sepMaybe + hint + describe),
		[]field{fieldShort, fieldHint, fieldDesc}},
	// -k
	{regexp.MustCompile(lineStart + `-` + shortKey + describe),
		[]field{fieldShort, fieldDesc}},
}

type field int

const (
	fieldShort field = iota
	fieldLong
	fieldHint
	fieldDesc
)

// parseLine returns ok=false when no form matches.
func parseLine(line string) (opt miniopt.Option, ok bool) {
	for _, form := range forms {
		m := form.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for i, f := range form.fields {
			value := m[i+1]
			switch f {
			case fieldShort:
				opt.Short = []rune(value)[0]
			case fieldLong:
				opt.Long = value
			case fieldHint:
				opt.ArgHint = value
			case fieldDesc:
				opt.Description = strings.TrimSpace(value)
			}
		}
		// the first matching form decides, a bad hint is not retried
		return opt, opt.ArgHint == "" || strings.HasSuffix(opt.ArgHint, ">")
	}
	return miniopt.Option{}, false
}

// Parse reads an option description, one option per line. Lines that do not
// start with a dash continue the description of the previous option.
func Parse(r io.Reader) ([]miniopt.Option, error) {
	var table []miniopt.Option
	var desc [][]string

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if !strings.HasPrefix(text, "-") {
			if len(desc) > 0 {
				desc[len(desc)-1] = append(desc[len(desc)-1], text)
			}
			continue
		}
		opt, ok := parseLine(line)
		if !ok {
			return nil, &SyntaxError{Line: lineno, Text: line}
		}
		table = append(table, opt)
		desc = append(desc, nil)
		if opt.Description != "" {
			desc[len(desc)-1] = append(desc[len(desc)-1], opt.Description)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading options: %w", err)
	}

	for i := range table {
		table[i].Description = strings.Join(desc[i], "\n")
	}
	if err := check(table); err != nil {
		return nil, err
	}
	return table, nil
}

func check(table []miniopt.Option) error {
	if len(table) == 0 {
		return ErrEmpty
	}
	shorts := make(map[rune]struct{}, len(table))
	longs := make(map[string]struct{}, len(table))
	for _, opt := range table {
		if opt.Short != miniopt.NoShort {
			if _, dup := shorts[opt.Short]; dup {
				return fmt.Errorf("%w: short name [%c]", ErrDuplicate, opt.Short)
			}
			shorts[opt.Short] = struct{}{}
		}
		if opt.Long != "" {
			if _, dup := longs[opt.Long]; dup {
				return fmt.Errorf("%w: long name [%s]", ErrDuplicate, opt.Long)
			}
			longs[opt.Long] = struct{}{}
		}
	}
	return miniopt.Validate(table)
}
