package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ffl/value"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch and a file to which to apply it", cli.ErrUsage)
	}
	if cfg.Make {
		return makePatch(cfg, cc, args)
	}
	p, err := readFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target, err := getValueFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var res value.Value
	if cfg.Merge {
		res, err = value.MergePatch(target, p)
	} else {
		res, err = value.ApplyPatch(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return writeValue(cfg.MainConfig, cc.Out, res)
}

func makePatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	from, err := getValueFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := getValueFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d, err := value.CreateMergePatch(from, to)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%s\n", d)
	return err
}
