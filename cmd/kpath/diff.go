package main

import (
	"fmt"

	"github.com/Qwlouse/konfig"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two paths", cli.ErrUsage)
	}
	a, err := konfig.Parse(args[0])
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[0], err)
	}
	b, err := konfig.Parse(args[1])
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[1], err)
	}
	if a.Equal(b) {
		if !cfg.Quiet {
			fmt.Fprintln(cc.Out, a)
		}
		return nil
	}
	if !cfg.Quiet {
		diffCfg := diffpatch.New()
		diffs := diffCfg.DiffMain(a.String(), b.String(), false)
		colored := cfg.colorable(cc.Out)
		for _, d := range diffs {
			fmt.Fprint(cc.Out, renderDiff(d, colored))
		}
		fmt.Fprintln(cc.Out)
	}
	return cli.ExitCodeErr(1)
}

func renderDiff(d diffpatch.Diff, colored bool) string {
	switch d.Type {
	case diffpatch.DiffDelete:
		if colored {
			return color.RedString("%s", d.Text)
		}
		return "[-" + d.Text + "-]"
	case diffpatch.DiffInsert:
		if colored {
			return color.GreenString("%s", d.Text)
		}
		return "[+" + d.Text + "+]"
	default:
		return d.Text
	}
}
