package main

import (
	"fmt"
	"io"
	"strings"

	mckenna "github.com/a-gargiulo/McKenna"
	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/encode"
	"github.com/a-gargiulo/McKenna/eval"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	tool := mckenna.DefaultTool()
	tool.Env = cfg.Env
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := evalFile(cfg.MainConfig, cc.Out, arg, tool); err != nil {
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

func evalFile(cfg *MainConfig, w io.Writer, arg string, tool *mckenna.Tool) error {
	d, err := config.Load(arg, cfg.loadOpts()...)
	if err != nil {
		return err
	}
	res, err := tool.Eval(d.Root)
	if err != nil {
		return fmt.Errorf("error evaluating %s: %w", arg, err)
	}
	if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func envFunc(env eval.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
