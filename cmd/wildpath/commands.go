package main

import (
	"github.com/scott-cotton/cli"
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
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "wildpath").
		WithSynopsis("wildpath [opts] command [opts]").
		WithDescription("wildpath reads values out of JSON and YAML documents by wildcard paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return wildpathMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			PickCommand(cfg),
			ExpandCommand(cfg),
			TokenizeCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-d default] <path> [files]").
		WithDescription("get the values a path reaches in each document").
		WithOpts(&cli.Opt{
			Name:        "d",
			Aliases:     []string{"default"},
			Description: "value printed when nothing resolves, in the input format",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.defaultOpt), "(value)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func PickCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PickConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Pick, "pick").
		WithAliases("p").
		WithSynopsis("pick -p <path> [-p <path>]... [files]").
		WithDescription("copy the parts of each document that the paths reach").
		WithOpts(&cli.Opt{
			Name:        "p",
			Description: "path to pick, may be repeated",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.pathOpt), "(path)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return pick(cfg, cc, args)
		})
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExpandConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Expand, "expand").
		WithAliases("x").
		WithSynopsis("expand [-gjson] <path> [files]").
		WithDescription("list the concrete paths a wildcard path reaches in each document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return expand(cfg, cc, args)
		})
}

func TokenizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokenizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokenize, "tokenize").
		WithAliases("t", "tok").
		WithSynopsis("tokenize [-lax] <path>...").
		WithDescription("print the segments of each path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokenize(cfg, cc, args)
		})
}
