package main

import (
	"fmt"
	"io"

	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/encode"
	"github.com/a-gargiulo/McKenna/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	return diffFiles(cfg.MainConfig, cc.Out, args[0], args[1])
}

func diffFiles(cfg *MainConfig, w io.Writer, fromArg, toArg string) error {
	from, err := config.Load(fromArg, cfg.loadOpts()...)
	if err != nil {
		return err
	}
	to, err := config.Load(toArg, cfg.loadOpts()...)
	if err != nil {
		return err
	}
	d := libdiff.Diff(from.Root, to.Root)
	if d == nil {
		return nil
	}
	if err := encode.Encode(d, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding diff: %w", err)
	}
	return cli.ExitCodeErr(1)
}
