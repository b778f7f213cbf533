package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/a-gargiulo/McKenna/format"
)

const singleConfig = `
mode: single
mechanism: gri30.yaml
geometry:
  type: free_flame
  domain_width: 0.02
  burner_diameter: 0.06
boundary_conditions:
  composition: "CH4: 1, O2: 2, N2: 7.52"
  burner_temperature: 350.0
  stagnation_temperature: 400.0
  flow_rates:
    CH4: 1.0
    O2: 2.0
    N2: 7.52
submodels:
  radiation: false
  transport: mixture-averaged
  soret: false
settings:
  meshing:
    grid_min_size: 1.0e-05
    max_grid_points: 1000
    ratio: 3.0
    slope: 0.1
    curve: 0.2
    prune: 0.05
`

const uqConfig = `
mode: uq
mechanism: gri30.yaml
geometry:
  type: impinging_jet
  domain_width: 0.02
  burner_diameter: 0.06
boundary_conditions:
  burner_temperature:
    distribution: uniform
    min: 300.0
    max: 400.0
  stagnation_temperature:
    distribution: normal
    mean: 400.0
    stdev: 5.0
  fuel: CH4
  flow_rates:
    CH4:
      distribution: normal
      mean: 1.0
      stdev: 0.01
    O2:
      distribution: normal
      mean: 2.0
      stdev: 0.02
submodels:
  radiation: true
  transport: multicomponent
  soret: true
settings:
  meshing:
    grid_min_size: 1.0e-05
    max_grid_points: 1000
    ratio: 3.0
    slope: 0.1
    curve: 0.2
    prune: 0.05
  uq:
    epistemic_samples: 2
    aleatory_samples: 3
`

func loadYAML(t *testing.T, text string) *Document {
	t.Helper()
	d, err := Load("-",
		WithStdin(strings.NewReader(text)),
		WithFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDecodeSingle(t *testing.T) {
	cfg, err := Decode(loadYAML(t, singleConfig))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModeSingle {
		t.Errorf("mode %q", cfg.Mode)
	}
	if cfg.Geometry.Type != FreeFlame {
		t.Errorf("geometry type %q", cfg.Geometry.Type)
	}
	if cfg.Geometry.DomainWidth != 0.02 {
		t.Errorf("domain width %v", cfg.Geometry.DomainWidth)
	}
	bc := cfg.BoundaryConditions
	if bc.BurnerTemperature.Value != 350 {
		t.Errorf("burner temperature %v", bc.BurnerTemperature.Value)
	}
	if got := bc.FlowRates["N2"].Value; got != 7.52 {
		t.Errorf("N2 rate %v", got)
	}
	if got := bc.Species(); len(got) != 3 || got[0] != "CH4" {
		t.Errorf("species %v", got)
	}
	if cfg.Settings.Meshing.GridMinSize != 1e-5 {
		t.Errorf("grid min size %v", cfg.Settings.Meshing.GridMinSize)
	}
}

func TestDecodeUQ(t *testing.T) {
	cfg, err := Decode(loadYAML(t, uqConfig))
	if err != nil {
		t.Fatal(err)
	}
	bc := cfg.BoundaryConditions
	tb := bc.BurnerTemperature.Stat
	if tb == nil || tb.Distribution != "uniform" || tb.Min != 300 || tb.Max != 400 {
		t.Errorf("burner temperature stat %+v", tb)
	}
	ts := bc.StagnationTemperature.Stat
	if ts == nil || ts.Distribution != "normal" || ts.Mean != 400 || ts.Stdev != 5 {
		t.Errorf("stagnation temperature stat %+v", ts)
	}
	if bc.Fuel != "CH4" {
		t.Errorf("fuel %q", bc.Fuel)
	}
	if cfg.Settings.UQ.EpistemicSamples != 2 || cfg.Settings.UQ.AleatorySamples != 3 {
		t.Errorf("uq settings %+v", cfg.Settings.UQ)
	}
}

func TestValidateReject(t *testing.T) {
	edit := func(old, new string, base string) string {
		return strings.Replace(base, old, new, 1)
	}
	for _, tc := range []struct {
		name string
		text string
		want string
	}{
		{
			"bad mode",
			edit("mode: single", "mode: steady", singleConfig),
			"mode",
		},
		{
			"missing mechanism",
			edit("mechanism: gri30.yaml", "other: x", singleConfig),
			"mechanism",
		},
		{
			"bad geometry type",
			edit("type: free_flame", "type: tube", singleConfig),
			"geometry.type",
		},
		{
			"non-numeric domain width",
			edit("domain_width: 0.02", `domain_width: wide`, singleConfig),
			"domain_width",
		},
		{
			"bad composition",
			edit(`composition: "CH4: 1, O2: 2, N2: 7.52"`,
				`composition: "CH4 1"`, singleConfig),
			"composition",
		},
		{
			"species not in flow rates",
			edit("    N2: 7.52\n", "", singleConfig),
			"flow_rates",
		},
		{
			"non-numeric flow rate",
			edit("O2: 2.0", "O2: lots", singleConfig),
			"flow_rates.O2",
		},
		{
			"flow rate without stdev",
			edit("      mean: 2.0\n      stdev: 0.02\n", "      mean: 2.0\n", uqConfig),
			"flow_rates.O2",
		},
		{
			"stat field in single mode",
			edit("burner_temperature: 350.0",
				"burner_temperature:\n    distribution: uniform\n    min: 300.0\n    max: 400.0",
				singleConfig),
			"burner_temperature",
		},
		{
			"soret without multicomponent",
			edit("soret: false", "soret: true", singleConfig),
			"soret",
		},
		{
			"missing meshing field",
			edit("    prune: 0.05\n", "", singleConfig),
			"prune",
		},
		{
			"scalar field in uq mode",
			edit("burner_temperature:\n    distribution: uniform\n    min: 300.0\n    max: 400.0",
				"burner_temperature: 350.0", uqConfig),
			"burner_temperature",
		},
		{
			"bad distribution",
			edit("distribution: uniform", "distribution: poisson", uqConfig),
			"distribution",
		},
		{
			"uniform without max",
			edit("    max: 400.0\n", "", uqConfig),
			"max",
		},
		{
			"missing uq settings",
			edit("  uq:\n    epistemic_samples: 2\n    aleatory_samples: 3\n",
				"", uqConfig),
			"settings.uq",
		},
		{
			"non-integer samples",
			edit("epistemic_samples: 2", "epistemic_samples: 2.5", uqConfig),
			"epistemic_samples",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(loadYAML(t, tc.text))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrValidate) {
				t.Fatalf("error does not wrap ErrValidate: %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateAccept(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
	}{
		{"single", singleConfig},
		{"uq", uqConfig},
		{
			// the original validator tolerates absent flow_rates in
			// uq mode
			"uq no flow rates",
			strings.Replace(uqConfig,
				"  flow_rates:\n    CH4:\n      distribution: normal\n      mean: 1.0\n      stdev: 0.01\n    O2:\n      distribution: normal\n      mean: 2.0\n      stdev: 0.02\n",
				"", 1),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := Validate(loadYAML(t, tc.text)); err != nil {
				t.Fatal(err)
			}
		})
	}
}
