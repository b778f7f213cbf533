package main

import (
	"fmt"

	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/doc"
	"github.com/a-gargiulo/McKenna/encode"
	"github.com/a-gargiulo/McKenna/uq"

	"github.com/scott-cotton/cli"
)

func sample(cfg *SampleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sample.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: sample requires one file argument", cli.ErrUsage)
	}
	d, err := config.Load(args[0], cfg.loadOpts()...)
	if err != nil {
		return err
	}
	c, err := config.Decode(d)
	if err != nil {
		return err
	}
	if c.Mode != config.ModeUQ {
		return fmt.Errorf("sample requires a %q mode configuration, got %q",
			config.ModeUQ, c.Mode)
	}
	s := uq.NewSampler(uint64(cfg.Seed))
	bc := &c.BoundaryConditions
	draws := make([]any, cfg.N)
	for i := range draws {
		epi, err := s.Epistemic(bc)
		if err != nil {
			return err
		}
		alea, err := s.Aleatory(bc)
		if err != nil {
			return err
		}
		draws[i] = map[string]any{
			"epistemic": anyMap(epi),
			"aleatory":  anyMap(alea),
		}
	}
	node, err := doc.FromAny(draws)
	if err != nil {
		return err
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding samples: %w", err)
	}
	return nil
}

func anyMap(m map[string]float64) map[string]any {
	res := make(map[string]any, len(m))
	for k, v := range m {
		res[k] = v
	}
	return res
}
