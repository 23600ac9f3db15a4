package main

import (
	"fmt"

	"github.com/Qwlouse/konfig"
	"github.com/scott-cotton/cli"
)

func norm(cfg *NormConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Norm.Parse(cc, args)
	if err != nil {
		cfg.Norm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: norm requires at least one path", cli.ErrUsage)
	}
	for _, arg := range args {
		p, err := konfig.Parse(arg)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		fmt.Fprintln(cc.Out, p)
	}
	return nil
}
