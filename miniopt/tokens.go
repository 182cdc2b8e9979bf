package miniopt

// tokenSource walks an argument vector left to right. Slot 0 holds the
// program name and is never returned.
type tokenSource struct {
	args []string
	pos  int // index of the last returned token
}

func newTokenSource(args []string) tokenSource {
	return tokenSource{args: args}
}

// peek returns the next token without consuming it.
func (t *tokenSource) peek() (string, bool) {
	if t.pos+1 >= len(t.args) {
		return "", false
	}
	return t.args[t.pos+1], true
}

// advance consumes and returns the next token.
func (t *tokenSource) advance() (string, bool) {
	if t.pos+1 >= len(t.args) {
		return "", false
	}
	t.pos++
	return t.args[t.pos], true
}

// remaining returns the tokens not consumed yet.
func (t *tokenSource) remaining() []string {
	if t.pos+1 >= len(t.args) {
		return nil
	}
	return t.args[t.pos+1:]
}
