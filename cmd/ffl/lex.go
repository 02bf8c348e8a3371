package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ffl/encode"
	"github.com/signadot/ffl/token"
)

func lex(cfg *LexConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lex.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		if err := lexSource(cfg, cc.Out, file, d); err != nil {
			return err
		}
	}
	return nil
}

func lexSource(cfg *LexConfig, w io.Writer, file string, src []byte) error {
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if cfg.Color {
		_, err := io.WriteString(w, encode.NewColors().Tokens(toks))
		return err
	}
	if !cfg.All {
		toks = token.Significant(toks)
	}
	pd := token.NewPosDoc(src)
	for i := range toks {
		t := &toks[i]
		line, col := pd.LineCol(t.Off)
		if _, err := fmt.Fprintf(w, "%s:%d:%d\t%s\t%q\n", file, line+1, col+1, t.Type, t.Bytes); err != nil {
			return err
		}
	}
	return nil
}
