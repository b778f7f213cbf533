package main

import (
	"fmt"
	"io"
	"os"

	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/encode"
	"github.com/a-gargiulo/McKenna/eval"
	"github.com/a-gargiulo/McKenna/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat resolves the input format flags; ok is false when nothing
// was requested and suffix detection should apply.
func (cfg *MainConfig) inFormat() (format.Format, bool) {
	var fmat format.Format
	set := false
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
		set = true
	case cfg.J:
		fmat = format.JSONFormat
		set = true
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
		set = true
	}
	return fmat, set
}

func (cfg *MainConfig) loadOpts() []config.LoadOption {
	fmat, ok := cfg.inFormat()
	if !ok {
		return nil
	}
	return []config.LoadOption{config.WithFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ParamsConfig struct {
	*MainConfig

	Keys []string

	Params *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	Validate *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env eval.Env

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type SampleConfig struct {
	*MainConfig

	N    int `cli:"name=n desc='number of sample pairs to draw'"`
	Seed int `cli:"name=seed desc='random seed'"`

	Sample *cli.Command
}

type MeshConfig struct {
	*MainConfig

	Run bool `cli:"name=run desc='hand control to the kernel after building'"`

	Mesh *cli.Command
}
