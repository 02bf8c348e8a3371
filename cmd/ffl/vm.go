package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ffl/value"
	"github.com/signadot/ffl/vm"
)

func vmCmd(cfg *VMConfig, cc *cli.Context, args []string) error {
	args, err := cfg.VM.Parse(cc, args)
	if err != nil {
		cfg.VM.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	rt, err := cfg.runtime()
	if err != nil {
		return err
	}
	env := value.NewMapCallable()
	for k, v := range cfg.Env {
		env.Define(k, v, true)
	}
	for _, file := range args {
		src, err := readFile(cc, file)
		if err != nil {
			return err
		}
		p, err := vm.Assemble(string(src))
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if cfg.Disassemble {
			if err := vm.Disassemble(cc.Out, p); err != nil {
				return err
			}
			continue
		}
		var opts []vm.RunOption
		if cfg.Strict {
			opts = append(opts, vm.Strict())
		}
		if cfg.Trace {
			opts = append(opts, vm.Trace(func(ti vm.TraceInfo) {
				fmt.Fprintf(os.Stderr, "%04d %-20s depth=%d\n", ti.IP, vm.OpName(ti.Op), ti.Depth)
			}))
		}
		res, err := rt.Run(p, env, cfg.As, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := writeValue(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
