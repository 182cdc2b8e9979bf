package miniopt

import (
	"unicode/utf8"

	"github.com/dzonerzy/go-miniopt/internal/fuzzy"
)

// Status is the outcome of one Session.Next call. The values follow the
// getopt convention so that `for s.Next() > 0` walks every result.
type Status int

const (
	StatusError    Status = -1 // Terminal failure, see Session.Err
	StatusFinished Status = 0  // No more arguments
	StatusPass     Status = 1  // An option or positional argument is available
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusFinished:
		return "finished"
	case StatusPass:
		return "pass"
	default:
		return "unknown"
	}
}

// ParseState represents the current state of the parser state machine
type ParseState int

const (
	StateStart        ParseState = iota // Dispatching on the next token
	StateFinished                       // Terminal success
	StateDoubleDash                     // After "--": every token is positional
	StateShortCluster                   // Splitting "-abc" into -a -b -c
	StateError                          // Terminal failure
)

func (s ParseState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateFinished:
		return "finished"
	case StateDoubleDash:
		return "double-dash"
	case StateShortCluster:
		return "short-cluster"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Session parses one argument vector against one option table.
//
// A Session is not safe for concurrent use. Parse independent argument
// vectors with independent sessions; they share nothing but the read-only
// table.
type Session struct {
	table   []Option
	matcher *matcher
	tokens  tokenSource

	token  string // token under examination
	cursor int    // byte offset of the current rune while in StateShortCluster

	index  int
	arg    string
	hasArg bool
	err    *ParseError
	state  ParseState

	suggest bool
}

// NewSession validates table and prepares a parse of args. args[0] is the
// program name and is skipped, as with os.Args.
func NewSession(args []string, table []Option) (*Session, error) {
	if err := Validate(table); err != nil {
		return nil, err
	}
	s := &Session{}
	s.init(args, table)
	return s, nil
}

func (s *Session) init(args []string, table []Option) {
	*s = Session{
		table:   table,
		matcher: newMatcher(table),
		tokens:  newTokenSource(args),
		index:   len(table),
		state:   StateStart,
		suggest: true,
	}
}

// WithoutSuggestions disables "did you mean" hints on unknown long options.
func (s *Session) WithoutSuggestions() *Session {
	s.suggest = false
	return s
}

// Next advances the session by one result: a recognized option with or
// without its argument, or one positional argument. Once StatusFinished or
// StatusError is returned, every later call returns it again.
//
//nolint:gocognit,gocyclo,cyclop // One switch over the token shapes reads better than many helpers.
func (s *Session) Next() Status {
	for {
		switch s.state {
		case StateStart:
			token, ok := s.tokens.advance()
			if !ok {
				s.finish()
				continue
			}
			s.token = token

			switch {
			case token == "":
				// Empty arguments are dropped.
				continue
			case token[0] != '-':
				return s.pass(len(s.table), token, true)
			}

			r, width := utf8.DecodeRuneInString(token[1:])
			if len(token) == 1 {
				r = NoShort
			}
			if index, needsArg, ok := s.matcher.matchShort(r); ok {
				if !needsArg {
					s.cursor = 1
					s.state = StateShortCluster
					return s.pass(index, "", false)
				}
				return s.shortArgument(index, token[1+width:])
			}

			if r != '-' {
				return s.fail(ErrorTypeUnknownOption, len(s.table), "option ", token, " is unknown.")
			}
			if len(token) == 2 {
				s.state = StateDoubleDash
				continue
			}
			return s.long(token)

		case StateDoubleDash:
			token, ok := s.tokens.advance()
			if !ok {
				s.finish()
				continue
			}
			return s.pass(len(s.table), token, true)

		case StateShortCluster:
			_, width := utf8.DecodeRuneInString(s.token[s.cursor:])
			s.cursor += width
			if s.cursor >= len(s.token) {
				s.state = StateStart
				continue
			}
			r, _ := utf8.DecodeRuneInString(s.token[s.cursor:])
			index, needsArg, ok := s.matcher.matchShort(r)
			if !ok || needsArg {
				return s.fail(ErrorTypeClusterOption, len(s.table), "option ", s.token, " has error.")
			}
			return s.pass(index, "", false)

		case StateError:
			s.index, s.arg, s.hasArg = len(s.table), "", false
			return StatusError

		default: // StateFinished
			s.index, s.arg, s.hasArg = len(s.table), "", false
			return StatusFinished
		}
	}
}

// shortArgument resolves the argument of a short option from the rest of
// its token ("-xarg", "-x=arg") or from the next token ("-x arg").
func (s *Session) shortArgument(index int, tail string) Status {
	switch {
	case tail == "":
		if next, ok := s.tokens.peek(); ok {
			s.tokens.advance()
			return s.pass(index, next, true)
		}
	case tail[0] != '=':
		return s.pass(index, tail, true)
	case len(tail) > 1:
		return s.pass(index, tail[1:], true)
	}
	return s.fail(ErrorTypeMissingArgument, index, "option ", s.token, " argument is missing.")
}

// long handles "--name", "--name=value" and "--name value".
func (s *Session) long(token string) Status {
	begin, end := 2, 2
	if c := token[begin]; c != '=' && c != '-' {
		end++
		for end < len(token) && token[end] != '=' {
			end++
		}
	}
	name := token[begin:end]

	index, needsArg, ok := s.matcher.matchLong(name)
	switch {
	case !ok:
		return s.unknownLong(name)
	case !needsArg:
		if end == len(token) {
			return s.pass(index, "", false)
		}
		return s.fail(ErrorTypeUnknownOption, len(s.table), "option ", token, " is unknown.")
	case end < len(token):
		if end+1 < len(token) {
			return s.pass(index, token[end+1:], true)
		}
	default:
		if next, ok := s.tokens.peek(); ok {
			s.tokens.advance()
			return s.pass(index, next, true)
		}
	}
	return s.fail(ErrorTypeMissingArgument, index, "option ", token, " argument is missing.")
}

func (s *Session) unknownLong(name string) Status {
	status := s.fail(ErrorTypeUnknownOption, len(s.table), "option ", s.token, " is unknown.")
	if s.suggest && name != "" {
		if best := fuzzy.Suggest(name, s.matcher.longNames()); best != "" {
			s.err.Suggestion = "--" + best
		}
	}
	return status
}

func (s *Session) pass(index int, arg string, hasArg bool) Status {
	s.index, s.arg, s.hasArg = index, arg, hasArg
	return StatusPass
}

func (s *Session) finish() {
	s.state = StateFinished
	s.index, s.arg, s.hasArg = len(s.table), "", false
}

// fail records the session error built from fragments and makes the session
// terminal.
func (s *Session) fail(typ ErrorType, option int, fragments ...string) Status {
	s.err = &ParseError{
		Type:    typ,
		Message: concat(maxErrorLen, fragments...),
		Token:   s.token,
		Option:  option,
	}
	s.state = StateError
	s.index, s.arg, s.hasArg = len(s.table), "", false
	return StatusError
}

// Index returns the table index of the last result, or len(table) when the
// last result is a positional argument or the session is terminal.
func (s *Session) Index() int { return s.index }

// Arg returns the argument of the last result. ok is false when the option
// takes no argument or the session is terminal.
func (s *Session) Arg() (arg string, ok bool) { return s.arg, s.hasArg }

// Option returns the table entry of the last result. ok is false for
// positional arguments and terminal states.
func (s *Session) Option() (Option, bool) {
	if s.index < 0 || s.index >= len(s.table) {
		return Option{}, false
	}
	return s.table[s.index], true
}

// IsPositional reports whether the last result is a non-option argument.
func (s *Session) IsPositional() bool {
	return s.index == len(s.table) && s.hasArg
}

// Err returns the terminal error, or nil.
func (s *Session) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// What returns the terminal error message, or "".
func (s *Session) What() string {
	if s.err == nil {
		return ""
	}
	return s.err.Message
}

// State returns the current parser state.
func (s *Session) State() ParseState { return s.state }

// Table returns the option table the session parses against.
func (s *Session) Table() []Option { return s.table }

// Rest returns the arguments not consumed yet. After "--" these are exactly
// the positional arguments still to be reported.
func (s *Session) Rest() []string { return s.tokens.remaining() }
