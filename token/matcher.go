package token

import "slices"

// Matcher matches tokens by type or by text.
type Matcher struct {
	types []TokenType
	texts []string
}

func NewMatcher() *Matcher {
	return &Matcher{}
}

func (m *Matcher) Add(t TokenType) *Matcher {
	m.types = append(m.types, t)
	return m
}

func (m *Matcher) AddText(s string) *Matcher {
	m.texts = append(m.texts, s)
	return m
}

func (m *Matcher) Match(t *Token) bool {
	if slices.Contains(m.types, t.Type) {
		return true
	}
	for _, s := range m.texts {
		if t.Is(s) {
			return true
		}
	}
	return false
}

// FindMatch returns the index of the first token at or after i that
// matches and is not inside a bracketed region opened at or after i.
// The search fails at a closing bracket which has no opener in the
// scanned range.
func (m *Matcher) FindMatch(toks []Token, i int) (int, bool) {
	depth := 0
	for ; i < len(toks); i++ {
		t := &toks[i]
		if depth == 0 && m.Match(t) {
			return i, true
		}
		switch {
		case t.Type.IsOpen():
			depth++
		case t.Type.IsClose():
			if depth == 0 {
				return i, false
			}
			depth--
		}
	}
	return i, false
}
