package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/MakeNowJust/heredoc"

	"github.com/dzonerzy/go-miniopt/miniopt"
)

// Header is the first line of every generated file.
const Header = "// Code generated by miniopt. DO NOT EDIT."

// Config controls the generated file.
type Config struct {
	Package   string    // package clause, "main" when empty
	Func      string    // dispatch function name, "parseArgs" when empty
	Timestamp time.Time // written into the header unless zero
}

// ErrIdentifier is returned when the package or function name is not a Go
// identifier.
var ErrIdentifier = errors.New("not a Go identifier")

func (c Config) withDefaults() (Config, error) {
	if c.Package == "" {
		c.Package = "main"
	}
	if c.Func == "" {
		c.Func = "parseArgs"
	}
	for _, name := range []string{c.Package, c.Func} {
		if !token.IsIdentifier(name) {
			return c, fmt.Errorf("%w: %q", ErrIdentifier, name)
		}
	}
	return c, nil
}

var source = template.Must(template.New("source").Funcs(template.FuncMap{
	"literal": literal,
	"label":   func(opt miniopt.Option) string { return opt.String() },
}).Parse(heredoc.Doc(`
	{{.Header}}
	{{- if not .Time.IsZero}}
	// Generated at {{.Time.Format "Mon Jan _2 15:04:05 2006"}}.
	{{- end}}

	package {{.Package}}

	import "github.com/dzonerzy/go-miniopt/miniopt"

	var {{.Table}} = []miniopt.Option{
	{{- range .Options}}
		{{literal .}},
	{{- end}}
	}

	// {{.Func}} walks args with {{.Table}}. args[0] is the program name.
	func {{.Func}}(args []string) error {
		s, err := miniopt.NewSession(args, {{.Table}})
		if err != nil {
			return err
		}
		for s.Next() == miniopt.StatusPass {
			switch s.Index() {
	{{- range $i, $opt := .Options}}
			case {{$i}}: // {{label $opt}}
	{{- if $opt.HasArg}}
				// {{$opt.ArgHint}} = s.Arg()
	{{- end}}
	{{- end}}
			default:
				// positional argument = s.Arg()
			}
		}
		return s.Err()
	}
`)))

type sourceData struct {
	Header  string
	Time    time.Time
	Package string
	Func    string
	Table   string
	Options []miniopt.Option
}

// literal renders opt as a keyed miniopt.Option composite literal.
func literal(opt miniopt.Option) string {
	fields := make([]string, 0, 4)
	if opt.Short != miniopt.NoShort {
		fields = append(fields, "Short: "+strconv.QuoteRune(opt.Short))
	}
	if opt.Long != "" {
		fields = append(fields, "Long: "+strconv.Quote(opt.Long))
	}
	if opt.ArgHint != "" {
		fields = append(fields, "ArgHint: "+strconv.Quote(opt.ArgHint))
	}
	if opt.Description != "" {
		fields = append(fields, "Description: "+strconv.Quote(opt.Description))
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

// Generate writes gofmt'ed Go source for table to w.
func Generate(w io.Writer, table []miniopt.Option, cfg Config) error {
	if len(table) == 0 {
		return ErrEmpty
	}
	if err := miniopt.Validate(table); err != nil {
		return err
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = source.Execute(&buf, sourceData{
		Header:  Header,
		Time:    cfg.Timestamp,
		Package: cfg.Package,
		Func:    cfg.Func,
		Table:   cfg.Func + "Options",
		Options: table,
	})
	if err != nil {
		return fmt.Errorf("rendering source: %w", err)
	}

	code, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting source: %w", err)
	}
	_, err = w.Write(code)
	return err
}
