package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force colored output'"`
	NoColor bool `cli:"name=nocolor desc='disable colored output'"`

	Main *cli.Command
}

// colorable reports whether output to w should be colored: forced on
// or off by flag, otherwise on when w is a terminal.
func (cfg *MainConfig) colorable(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type NormConfig struct {
	*MainConfig

	Norm *cli.Command
}

type PartsConfig struct {
	*MainConfig

	Parts *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='suppress output, exit status only'"`

	Diff *cli.Command
}
