package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a value path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		v, err := getValueFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if !cfg.List {
			res, err := v.GetPath(path)
			if err != nil {
				return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
			}
			if err := writeValue(cfg.MainConfig, cc.Out, res); err != nil {
				return err
			}
			continue
		}
		res, err := v.ListPath(nil, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		for _, r := range res {
			if err := writeValue(cfg.MainConfig, cc.Out, r); err != nil {
				return err
			}
		}
	}
	return nil
}
