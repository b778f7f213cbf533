package main

import (
	"fmt"
	"io"

	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := queryArg(cfg.MainConfig, cc.Out, arg, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func queryArg(cfg *MainConfig, w io.Writer, arg, query string) error {
	d, err := config.Load(arg, cfg.loadOpts()...)
	if err != nil {
		return err
	}
	res, err := d.Root.GetPath(query)
	if err != nil {
		return err
	}
	if res == nil {
		// don't encode anything and don't yell either
		return nil
	}
	if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
