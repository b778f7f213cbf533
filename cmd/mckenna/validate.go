package main

import (
	"github.com/a-gargiulo/McKenna/config"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := config.Load(arg, cfg.loadOpts()...)
		if err != nil {
			return err
		}
		if err := config.Validate(d); err != nil {
			return err
		}
		theLog.Info("configuration valid", "file", arg)
	}
	return nil
}
