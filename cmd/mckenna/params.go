package main

import (
	"fmt"
	"io"

	mckenna "github.com/a-gargiulo/McKenna"
	"github.com/a-gargiulo/McKenna/config"

	"github.com/scott-cotton/cli"
)

func params(cfg *ParamsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Params.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: params requires one file argument", cli.ErrUsage)
	}
	return paramsFile(cfg.MainConfig, cc.Out, args[0], cfg.Keys)
}

func paramsFile(cfg *MainConfig, w io.Writer, path string, keys []string) error {
	d, err := config.Load(path, cfg.loadOpts()...)
	if err != nil {
		return err
	}
	tool := mckenna.DefaultTool()
	return writeParams(w, tool.Params(d.Root, keys))
}

func writeParams(w io.Writer, ps []mckenna.Param) error {
	for _, p := range ps {
		if _, err := fmt.Fprintf(w, "%s = %f\n", p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}
