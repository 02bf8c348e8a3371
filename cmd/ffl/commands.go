package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ffl/eval"
	"github.com/signadot/ffl/value"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "classes",
			Description: "class file (yaml, json or toml), may be repeated",
			Type:        cli.NamedFuncOpt(cfg.classesOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: ffl/f, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: ffl/f, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ffl").
		WithSynopsis("ffl [opts] command [opts]").
		WithDescription("ffl is a tool for working with formula values, types and bytecode.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fflMain(cfg, cc, args)
		}).
		WithSubs(
			LexCommand(cfg),
			TypeCommand(cfg),
			VMCommand(cfg),
			EvalCommand(cfg),
			ViewCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func LexCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LexConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Lex, "lex").
		WithAliases("l").
		WithSynopsis("lex [opts] [files]").
		WithDescription("print the tokens of formula source, or color it with -color").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lex(cfg, cc, args)
		})
}

func TypeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Type, "type").
		WithAliases("t").
		WithSynopsis("type [opts] <annotation> [values]").
		WithDescription("parse a type annotation and match values against it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return typeCmd(cfg, cc, args)
		})
}

func VMCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VMConfig{MainConfig: mainCfg, Env: map[string]value.Value{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=expr)"),
		})
	return cli.NewCommandAt(&cfg.VM, "vm").
		WithSynopsis("vm [-e name=expr]... [opts] [asm-files]").
		WithDescription("assemble and run bytecode programs").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vmCmd(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]value.Value{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=expr)"),
		})
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=expr]... <expr>").
		WithDescription("evaluate an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalCmd(cfg, cc, args)
		})
}

func envOptTypeFunc(env map[string]value.Value) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func envFunc(env map[string]value.Value, a string) error {
	name, src, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=expr, got %q", cli.ErrUsage, a)
	}
	v, err := eval.Eval(src, env)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	env[name] = v
	return nil
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view value files, converting between formats").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithOpts(opts...).
		WithSynopsis("get <path> [files]").
		WithDescription("get elements of values from files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff value files, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patch> <file>").
		WithDescription("apply a json patch (RFC 6902) or json merge patch (RFC 7386) to a value file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
