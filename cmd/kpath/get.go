package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Qwlouse/konfig"
	"github.com/Qwlouse/konfig/resolve"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := konfig.Parse(args[0])
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[0], err)
	}
	args = args[1:]
	if len(args) == 0 {
		return getReader(cc.Out, cc.In, p)
	}
	for _, arg := range args {
		if err := getFile(cc, arg, p); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, p, err)
		}
	}
	return nil
}

func getFile(cc *cli.Context, file string, p *konfig.Path) error {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return getReader(cc.Out, r, p)
}

func getReader(w io.Writer, r io.Reader, p *konfig.Path) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	v, err := resolve.Get(doc, p)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(out)
	return err
}
