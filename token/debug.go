package token

import "github.com/signadot/ffl/debug"

// PrintTokens logs toks with their offsets under the heading msg.
func PrintTokens(toks []Token, msg string) {
	debug.Logf("%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		debug.Logf("\t%s `%s` at %d\n", t.Type, t.Bytes, t.Off)
	}
}
