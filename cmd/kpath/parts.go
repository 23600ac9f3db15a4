package main

import (
	"fmt"
	"io"

	"github.com/Qwlouse/konfig"
	"github.com/Qwlouse/konfig/key"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

var kindColors = map[key.Kind]func(string, ...any) string{
	key.IntKind:     color.RGB(128, 216, 236).SprintfFunc(),
	key.FloatKind:   color.RGB(128, 216, 236).SprintfFunc(),
	key.ComplexKind: color.RGB(128, 216, 236).SprintfFunc(),
	key.BoolKind:    color.CyanString,
	key.NoneKind:    color.RGB(168, 0, 196).SprintfFunc(),
	key.StringKind:  color.RGB(8, 196, 16).SprintfFunc(),
	key.SliceKind:   color.RGB(255, 0, 196).SprintfFunc(),
	key.TupleKind:   color.RGB(196, 128, 128).SprintfFunc(),
}

func parts(cfg *PartsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parts.Parse(cc, args)
	if err != nil {
		cfg.Parts.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: parts requires at least one path", cli.ErrUsage)
	}
	colored := cfg.colorable(cc.Out)
	for _, arg := range args {
		p, err := konfig.Parse(arg)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		printParts(cc.Out, p, colored)
	}
	return nil
}

func printParts(w io.Writer, p *konfig.Path, colored bool) {
	for _, k := range p.Keys() {
		lit := k.String()
		kind := k.Kind().String()
		if colored {
			if cf := kindColors[k.Kind()]; cf != nil {
				lit = cf("%s", lit)
			}
		}
		fmt.Fprintf(w, "%s\t%s\n", kind, lit)
	}
}
