package main

import (
	"github.com/a-gargiulo/McKenna/eval"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "mckenna").
		WithSynopsis("mckenna [opts] command [opts]").
		WithDescription("mckenna is a tool for working with McKenna burner configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mckennaMain(cfg, cc, args)
		}).
		WithSubs(
			ParamsCommand(cfg),
			ViewCommand(cfg),
			GetCommand(cfg),
			ValidateCommand(cfg),
			EvalCommand(cfg),
			DiffCommand(cfg),
			SampleCommand(cfg),
			MeshCommand(cfg))
}

func ParamsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParamsConfig{MainConfig: mainCfg}
	keyOpt := &cli.Opt{
		Name:        "k",
		Description: "key to report (repeatable, default hello, test)",
		Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
			cfg.Keys = append(cfg.Keys, a)
			return a, nil
		}, "(key)"),
	}
	cmd := cli.NewCommand("params").
		WithAliases("p", "pa").
		WithSynopsis("params [-k key ...] <file>").
		WithDescription("report numeric top-level parameters as 'key = value' lines").
		WithOpts(keyOpt).
		WithRun(func(cc *cli.Context, args []string) error {
			return params(cfg, cc, args)
		})
	cfg.Params = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("render configuration files").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <objectpath> [files]").
		WithDescription("get elements from configuration files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("validate").
		WithAliases("val").
		WithSynopsis("validate [files]").
		WithDescription("validate configuration files against the McKenna schema").
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
	cfg.Validate = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: eval.Env{}}
	envOpt := &cli.Opt{
		Name: "e",
		Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
			if err := envFunc(cfg.Env, a); err != nil {
				return nil, err
			}
			return 0, nil
		}, "(name=val)"),
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=val [ -e name2=val2 ]...] [files]").
		WithDescription("evaluate '='-prefixed expressions in configuration files").
		WithOpts(envOpt).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalCmd(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff two configuration files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func SampleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SampleConfig{MainConfig: mainCfg, N: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("sample").
		WithAliases("s", "sa").
		WithSynopsis("sample [-n N] [-seed S] <file>").
		WithDescription("draw Monte Carlo samples from a uq-mode configuration").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sample(cfg, cc, args)
		})
	cfg.Sample = cmd
	return cmd
}

func MeshCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MeshConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("mesh").
		WithAliases("m").
		WithSynopsis("mesh [-run] <file>").
		WithDescription("build the 1-D burner domain from a configuration").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mesh(cfg, cc, args)
		})
	cfg.Mesh = cmd
	return cmd
}
