package miniopt

// indexThreshold is the table size above which lookups go through maps
// instead of scanning the table.
const indexThreshold = 16

// matcher resolves short and long names against an option table. The first
// matching entry in table order wins, with or without the indexes.
type matcher struct {
	table []Option
	short map[rune]int
	long  map[string]int
}

func newMatcher(table []Option) *matcher {
	m := &matcher{table: table}
	if len(table) > indexThreshold {
		m.buildIndex()
	}
	return m
}

func (m *matcher) buildIndex() {
	m.short = make(map[rune]int, len(m.table))
	m.long = make(map[string]int, len(m.table))
	for i, opt := range m.table {
		if opt.Short != NoShort {
			if _, seen := m.short[opt.Short]; !seen {
				m.short[opt.Short] = i
			}
		}
		if opt.Long != "" {
			if _, seen := m.long[opt.Long]; !seen {
				m.long[opt.Long] = i
			}
		}
	}
}

// matchShort finds the option whose short name is r.
func (m *matcher) matchShort(r rune) (index int, needsArg, ok bool) {
	if r == '-' || r == '=' || r == NoShort {
		return len(m.table), false, false
	}
	if m.short != nil {
		if i, found := m.short[r]; found {
			return i, m.table[i].HasArg(), true
		}
		return len(m.table), false, false
	}
	for i := range m.table {
		if m.table[i].Short == r {
			return i, m.table[i].HasArg(), true
		}
	}
	return len(m.table), false, false
}

// matchLong finds the option whose long name equals name exactly.
func (m *matcher) matchLong(name string) (index int, needsArg, ok bool) {
	if name == "" {
		return len(m.table), false, false
	}
	if m.long != nil {
		if i, found := m.long[name]; found {
			return i, m.table[i].HasArg(), true
		}
		return len(m.table), false, false
	}
	for i := range m.table {
		if m.table[i].Long == name {
			return i, m.table[i].HasArg(), true
		}
	}
	return len(m.table), false, false
}

// longNames lists the long names of the table, for suggestions.
func (m *matcher) longNames() []string {
	names := make([]string, 0, len(m.table))
	for _, opt := range m.table {
		if opt.Long != "" {
			names = append(names, opt.Long)
		}
	}
	return names
}
