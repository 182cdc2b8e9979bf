package miniopt

import (
	"github.com/dzonerzy/go-miniopt/internal/pool"
)

// Result is one item produced by a session.
type Result struct {
	Index  int    // Table index, or len(table) for a positional argument
	Arg    string // Option argument or positional argument
	HasArg bool   // False for options that take no argument
}

// Positional reports whether r is a non-option argument of a parse against table.
func (r Result) Positional(table []Option) bool {
	return r.Index == len(table)
}

var sessionPool = pool.NewPoolWithReset(
	func() *Session { return &Session{} },
	func(s *Session) { *s = Session{} },
)

// Parse runs a full session over args and returns every result in order.
// On a malformed argument it returns the results produced before it along
// with the *ParseError.
func Parse(args []string, table []Option) ([]Result, error) {
	if err := Validate(table); err != nil {
		return nil, err
	}

	s := sessionPool.Get()
	defer sessionPool.Put(s)
	s.init(args, table)

	results := make([]Result, 0, max(len(args)-1, 0))
	for s.Next() == StatusPass {
		arg, ok := s.Arg()
		results = append(results, Result{Index: s.Index(), Arg: arg, HasArg: ok})
	}
	return results, s.Err()
}
