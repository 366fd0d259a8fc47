package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
)

func wildpathMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	def := cfg.defaultFallback()
	path := args[0]
	return eachInput(cc.In, args[1:], cfg.decode, func(name string, doc any) error {
		return getDoc(cfg.MainConfig, cc.Out, name, path, def, doc)
	})
}

func pick(cfg *PickConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pick.Parse(cc, args)
	if err != nil {
		cfg.Pick.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(cfg.Paths) == 0 {
		return fmt.Errorf("%w: pick requires at least one -p path", cli.ErrUsage)
	}
	return eachInput(cc.In, args, cfg.decode, func(name string, doc any) error {
		return pickDoc(cfg.MainConfig, cc.Out, name, cfg.Paths, doc)
	})
}

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		cfg.Expand.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: expand requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	return eachInput(cc.In, args[1:], cfg.decode, func(name string, doc any) error {
		return expandDoc(cfg, cc.Out, name, path, doc)
	})
}

func tokenize(cfg *TokenizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokenize.Parse(cc, args)
	if err != nil {
		cfg.Tokenize.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: tokenize requires at least one path", cli.ErrUsage)
	}
	return tokenizePaths(cfg, cc.Out, args)
}
