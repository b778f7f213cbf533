package main

import (
	"fmt"
	"io"

	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := viewFile(cfg.MainConfig, cc.Out, arg); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *MainConfig, w io.Writer, arg string) error {
	d, err := config.Load(arg, cfg.loadOpts()...)
	if err != nil {
		return err
	}
	if err := encode.Encode(d.Root, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	return nil
}
