package main

import (
	"fmt"

	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/encode"
	"github.com/a-gargiulo/McKenna/geom"

	"github.com/scott-cotton/cli"
)

func mesh(cfg *MeshConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Mesh.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: mesh requires one file argument", cli.ErrUsage)
	}
	d, err := config.Load(args[0], cfg.loadOpts()...)
	if err != nil {
		return err
	}
	c, err := config.Decode(d)
	if err != nil {
		return err
	}
	mem := &geom.Memory{}
	err = geom.Session(mem, func(k geom.Kernel) error {
		if _, err := geom.Build(k, c); err != nil {
			return err
		}
		if cfg.Run {
			return k.Run()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := encode.Encode(mem.Node(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding domain: %w", err)
	}
	return nil
}
