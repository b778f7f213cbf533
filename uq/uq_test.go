package uq

import (
	"testing"

	"github.com/a-gargiulo/McKenna/config"

	"github.com/google/go-cmp/cmp"
)

func uqBC() *config.BoundaryConditions {
	return &config.BoundaryConditions{
		BurnerTemperature: config.Param{Stat: &config.Stat{
			Distribution: "uniform", Min: 300, Max: 400,
		}},
		StagnationTemperature: config.Param{Stat: &config.Stat{
			Distribution: "normal", Mean: 400, Stdev: 5,
		}},
		Fuel: "CH4",
		FlowRates: map[string]config.Param{
			"CH4": {Stat: &config.Stat{
				Distribution: "normal", Mean: 1, Stdev: 0.01,
			}},
			"O2": {Stat: &config.Stat{
				Distribution: "normal", Mean: 2, Stdev: 0.02,
			}},
		},
	}
}

func TestEpistemicRange(t *testing.T) {
	s := NewSampler(7)
	bc := uqBC()
	for i := 0; i < 100; i++ {
		got, err := s.Epistemic(bc)
		if err != nil {
			t.Fatal(err)
		}
		tb := got["burner_temperature"]
		if tb < 300 || tb >= 400 {
			t.Fatalf("draw %d out of range: %v", i, tb)
		}
	}
}

func TestAleatoryKeys(t *testing.T) {
	s := NewSampler(7)
	got, err := s.Aleatory(uqBC())
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"stagnation_temperature", "CH4", "O2"} {
		if _, ok := got[key]; !ok {
			t.Errorf("missing %q", key)
		}
	}
	if len(got) != 3 {
		t.Errorf("extra keys: %v", got)
	}
}

func TestSeededDeterminism(t *testing.T) {
	bc := uqBC()
	a1, err := NewSampler(42).Aleatory(bc)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := NewSampler(42).Aleatory(bc)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a1, a2); d != "" {
		t.Errorf("same seed, different draws: %s", d)
	}
	a3, err := NewSampler(43).Aleatory(bc)
	if err != nil {
		t.Fatal(err)
	}
	if cmp.Diff(a1, a3) == "" {
		t.Error("different seeds produced identical draws")
	}
}

func TestDrawErrors(t *testing.T) {
	s := NewSampler(1)
	bc := uqBC()
	bc.BurnerTemperature = config.Param{Value: 350}
	if _, err := s.Epistemic(bc); err == nil {
		t.Error("expected error for scalar parameter")
	}
	bc = uqBC()
	bc.StagnationTemperature.Stat.Distribution = "poisson"
	if _, err := s.Aleatory(bc); err == nil {
		t.Error("expected error for unknown distribution")
	}
}
