// Package uq draws Monte Carlo samples from the uncertain boundary
// conditions of a uq-mode configuration. Epistemic draws cover the
// burner temperature, aleatory draws cover the stagnation temperature
// and the flow rates.
package uq

import (
	"fmt"
	"math/rand/v2"

	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/debug"
)

// Sampler draws from the distributions of Stat parameters. The seed
// is explicit so runs are reproducible.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Epistemic samples the epistemic uncertainty space: the burner
// temperature.
func (s *Sampler) Epistemic(bc *config.BoundaryConditions) (map[string]float64, error) {
	tb, err := s.draw("burner_temperature", bc.BurnerTemperature)
	if err != nil {
		return nil, err
	}
	return map[string]float64{"burner_temperature": tb}, nil
}

// Aleatory samples the aleatory uncertainty space: the stagnation
// temperature and every flow rate.
func (s *Sampler) Aleatory(bc *config.BoundaryConditions) (map[string]float64, error) {
	ts, err := s.draw("stagnation_temperature", bc.StagnationTemperature)
	if err != nil {
		return nil, err
	}
	samples := map[string]float64{"stagnation_temperature": ts}
	// sorted species order keeps draws reproducible for a given seed
	for _, sp := range bc.Species() {
		v, err := s.draw(sp, bc.FlowRates[sp])
		if err != nil {
			return nil, err
		}
		samples[sp] = v
	}
	return samples, nil
}

func (s *Sampler) draw(name string, p config.Param) (float64, error) {
	st := p.Stat
	if st == nil {
		return 0, fmt.Errorf("%q has no distribution to sample", name)
	}
	var v float64
	switch st.Distribution {
	case "uniform":
		v = st.Min + s.rng.Float64()*(st.Max-st.Min)
	case "normal":
		v = st.Mean + st.Stdev*s.rng.NormFloat64()
	default:
		return 0, fmt.Errorf(
			"%q has unknown distribution %q", name, st.Distribution)
	}
	if debug.Sample() {
		debug.Logf("sample %s ~ %s: %v\n", name, st.Distribution, v)
	}
	return v, nil
}
