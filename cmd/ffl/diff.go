package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ffl/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	v1, err := getValueFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	v2, err := getValueFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Lines {
		d := encode.DiffLines(v1, v2, cfg.useColor(cc.Out))
		if d == "" {
			return nil
		}
		if _, err := cc.Out.Write([]byte(d)); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	changes := encode.Changes(v1, v2)
	if len(changes) == 0 {
		return nil
	}
	for i := range changes {
		if _, err := fmt.Fprintln(cc.Out, changes[i].String()); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
