package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ffl/eval"
	"github.com/signadot/ffl/schema"
	"github.com/signadot/ffl/value"
)

func typeCmd(cfg *TypeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Type.Parse(cc, args)
	if err != nil {
		cfg.Type.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: type requires a type annotation", cli.ErrUsage)
	}
	rt, err := cfg.runtime()
	if err != nil {
		return err
	}
	d, err := rt.Type(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", d)
	if cfg.Compat != "" {
		from, err := rt.Type(cfg.Compat)
		if err != nil {
			return err
		}
		ok := schema.IsCompatible(d, from)
		fmt.Fprintf(cc.Out, "compatible from %s: %t\n", from, ok)
		if !ok {
			return cli.ExitCodeErr(1)
		}
	}
	failed := false
	for _, arg := range args[1:] {
		var v value.Value
		if cfg.Expr {
			v, err = eval.Eval(arg, nil)
		} else {
			v, err = getValueFile(cfg.MainConfig, cc, arg)
		}
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		ok := d.Match(v)
		fmt.Fprintf(cc.Out, "%s: %t\n", arg, ok)
		failed = failed || !ok
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
