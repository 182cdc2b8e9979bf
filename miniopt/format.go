package miniopt

import (
	"io"
	"strings"
	"unicode/utf8"
)

// WriteOptions writes a help listing of table, one option per line, each
// line prefixed by indent spaces:
//
//	-o, --out <file>  file to write
//	    --limit <n>   list size
//	-g                any description
//
// Descriptions spanning several lines stay aligned under the first one.
func WriteOptions(w io.Writer, table []Option, indent int) error {
	_, err := io.WriteString(w, FormatOptions(table, indent))
	return err
}

// FormatOptions returns the listing written by WriteOptions.
func FormatOptions(table []Option, indent int) string {
	if len(table) == 0 {
		return ""
	}

	columns := make([]string, len(table))
	width := 0
	for i, opt := range table {
		columns[i] = longColumn(opt)
		width = max(width, utf8.RuneCountInString(columns[i]))
	}

	pad := strings.Repeat(" ", max(indent, 0))
	descPad := pad + strings.Repeat(" ", 4+width+2)

	var b strings.Builder
	for i, opt := range table {
		head := pad + shortColumn(opt) + columns[i]
		if opt.Description == "" {
			b.WriteString(strings.TrimRight(head, " "))
			b.WriteByte('\n')
			continue
		}
		b.WriteString(head)
		b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(columns[i])+2))

		for j, line := range strings.Split(opt.Description, "\n") {
			if j > 0 {
				b.WriteString(descPad)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func shortColumn(opt Option) string {
	switch {
	case opt.Short == NoShort:
		return "    "
	case opt.Long != "":
		return "-" + string(opt.Short) + ", "
	default:
		return "-" + string(opt.Short) + "  "
	}
}

func longColumn(opt Option) string {
	var col string
	if opt.Long != "" {
		col = "--" + opt.Long
	}
	if opt.HasArg() {
		if col != "" {
			col += " "
		}
		col += opt.ArgHint
	}
	return col
}
