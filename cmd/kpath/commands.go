package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "kpath").
		WithSynopsis("kpath [opts] command [opts]").
		WithDescription("kpath is a tool for working with configuration paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kpathMain(cfg, cc, args)
		}).
		WithSubs(
			NormCommand(cfg),
			PartsCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg))
}

func kpathMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		cfg.Main.Usage(cc, nil)
		return nil
	}
	return cli.ErrUsage
}

func NormCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NormConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("norm").
		WithAliases("n").
		WithSynopsis("norm <path> [paths]").
		WithDescription("print paths in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return norm(cfg, cc, args)
		})
	cfg.Norm = cmd
	return cmd
}

func PartsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PartsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("parts").
		WithAliases("p").
		WithSynopsis("parts <path> [paths]").
		WithDescription("print the keys of paths, one per line with its kind").
		WithRun(func(cc *cli.Context, args []string) error {
			return parts(cfg, cc, args)
		})
	cfg.Parts = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a path in yaml documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff <path-a> <path-b>").
		WithDescription("compare two paths in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
