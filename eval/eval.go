package eval

import (
	"fmt"
	"maps"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/ffl/debug"
	"github.com/signadot/ffl/token"
	"github.com/signadot/ffl/value"
)

// Program is a compiled expression. It implements value.Code, so it can
// serve as the body of a value.Function.
type Program struct {
	src   string
	names []string
	prg   *vm.Program
}

// Compile compiles an expression.
func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(blankComments(src), exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Program{src: src, names: freeNames(src), prg: prg}, nil
}

func (p *Program) String() string {
	return p.src
}

// Names returns the variables the expression may refer to.
func (p *Program) Names() []string {
	return p.names
}

// Run evaluates p with vars.
func (p *Program) Run(vars map[string]value.Value) (value.Value, error) {
	env := baseEnv()
	for k, v := range vars {
		env[k] = value.ToAny(v)
	}
	return p.run(env)
}

// Execute evaluates p looking up variables in env.
func (p *Program) Execute(env value.Callable) (value.Value, error) {
	m := baseEnv()
	if env != nil {
		for _, name := range p.names {
			v := env.Get(name)
			if v.IsNull() {
				continue
			}
			m[name] = value.ToAny(v)
		}
	}
	return p.run(m)
}

func (p *Program) run(env map[string]any) (value.Value, error) {
	if debug.Eval() {
		debug.Logf("eval %q with %d vars\n", p.src, len(env))
	}
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrRun, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q result: ", p.src)
		debug.LogAny(res)
	}
	return toValue(res)
}

// Eval compiles and runs src.
func Eval(src string, vars map[string]value.Value) (value.Value, error) {
	p, err := Compile(src)
	if err != nil {
		return value.Value{}, err
	}
	return p.Run(vars)
}

var constants = map[string]any{
	"null": nil,
}

func baseEnv() map[string]any {
	return maps.Clone(constants)
}

// blankComments replaces comments with spaces. Newlines are kept so
// error positions still refer to src.
func blankComments(src string) string {
	toks, err := token.Tokenize(nil, []byte(src))
	if err != nil {
		return src
	}
	var b []byte
	for i := range toks {
		t := &toks[i]
		if t.Type != token.TComment {
			continue
		}
		if b == nil {
			b = []byte(src)
		}
		for j := t.Off; j < t.End(); j++ {
			if b[j] != '\n' {
				b[j] = ' '
			}
		}
	}
	if b == nil {
		return src
	}
	return string(b)
}

// freeNames lists identifiers in src which are not called or selected.
// Sources the lexer rejects yield no names; expr reports their errors.
func freeNames(src string) []string {
	toks, err := token.Tokenize(nil, []byte(src))
	if err != nil {
		return nil
	}
	toks = token.Significant(toks)
	var res []string
	seen := map[string]bool{}
	for i := range toks {
		t := &toks[i]
		if t.Type != token.TIdent && t.Type != token.TConstIdent {
			continue
		}
		if i > 0 && toks[i-1].Is(".") {
			continue
		}
		if i+1 < len(toks) && toks[i+1].Type == token.TLParen {
			continue
		}
		name := string(t.Bytes)
		if seen[name] {
			continue
		}
		seen[name] = true
		res = append(res, name)
	}
	return res
}
