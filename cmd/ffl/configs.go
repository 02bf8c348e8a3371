package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/ffl"
	"github.com/signadot/ffl/encode"
	"github.com/signadot/ffl/value"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	CBOR    bool `cli:"name=cbor desc='read values as cbor'"`

	F bool `cli:"name=f aliases=ffl desc='do i/o in formula literals'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *encode.Format
	ClassFiles          []string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() (encode.Format, bool) {
	switch {
	case cfg.F:
		return encode.FFLFormat, true
	case cfg.Y:
		return encode.YAMLFormat, true
	case cfg.J:
		return encode.JSONFormat, true
	}
	return encode.JSONFormat, false
}

// inFormat is the input format. Without flags, inputs are JSON.
func (cfg *MainConfig) inFormat() encode.Format {
	f, _ := cfg.flagFormat()
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	return f
}

// outFormat is the output format. Without flags, outputs are formula
// literals.
func (cfg *MainConfig) outFormat() encode.Format {
	f, ok := cfg.flagFormat()
	if !ok {
		f = encode.FFLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) colorsSet() bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// useColor reports whether output to w is colored: when -color is given,
// or when it is not and w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.colorsSet() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) runtime() (*ffl.Runtime, error) {
	opts := make([]ffl.Option, 0, len(cfg.ClassFiles))
	for _, f := range cfg.ClassFiles {
		opts = append(opts, ffl.WithClassFile(f))
	}
	return ffl.New(opts...)
}

type LexConfig struct {
	*MainConfig
	All bool `cli:"name=a desc='include whitespace and comments'"`

	Lex *cli.Command
}

type TypeConfig struct {
	*MainConfig
	Compat string `cli:"name=compat desc='check compatibility from this type'"`
	Expr   bool   `cli:"name=e desc='values are expressions'"`

	Type *cli.Command
}

type VMConfig struct {
	*MainConfig
	Env         map[string]value.Value
	Disassemble bool   `cli:"name=d desc='disassemble instead of running'"`
	Strict      bool   `cli:"name=strict desc='require exactly one value on the stack at the end'"`
	Trace       bool   `cli:"name=trace desc='trace instructions to stderr'"`
	As          string `cli:"name=as desc='check the result against a type'"`

	VM *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]value.Value

	Eval *cli.Command
}

type ViewConfig struct {
	*MainConfig
	CBOROut bool `cli:"name=cbor-out desc='write cbor'"`

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	List bool `cli:"name=l desc='path may select several values'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Lines bool `cli:"name=lines desc='show a line diff of the renderings'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='patch is a json merge patch'"`
	Make  bool `cli:"name=make desc='print the merge patch from the first file to the second'"`

	Patch *cli.Command
}
