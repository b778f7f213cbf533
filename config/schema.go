package config

import (
	"fmt"
	"sort"

	"github.com/a-gargiulo/McKenna/doc"
)

const (
	ModeUQ     = "uq"
	ModeSingle = "single"
)

const (
	FreeFlame    = "free_flame"
	ImpingingJet = "impinging_jet"
)

const (
	MixtureAveraged  = "mixture-averaged"
	Multicomponent   = "multicomponent"
	UnityLewisNumber = "unity-Lewis-number"
)

// Stat describes a distribution over a boundary-condition quantity.
// Uniform distributions carry Min/Max, normal ones Mean/Stdev.
type Stat struct {
	Distribution string
	Min, Max     float64
	Mean, Stdev  float64
}

// Param is a boundary-condition quantity: a plain value in single
// mode, a distribution in uq mode.
type Param struct {
	Value float64
	Stat  *Stat
}

type Geometry struct {
	Type           string
	DomainWidth    float64
	BurnerDiameter float64
}

type BoundaryConditions struct {
	BurnerTemperature     Param
	StagnationTemperature Param
	Fuel                  string
	Composition           string
	FlowRates             map[string]Param
}

// Species returns the flow-rate species names in sorted order.
func (bc *BoundaryConditions) Species() []string {
	res := make([]string, 0, len(bc.FlowRates))
	for sp := range bc.FlowRates {
		res = append(res, sp)
	}
	sort.Strings(res)
	return res
}

type Submodels struct {
	Radiation bool
	Transport string
	Soret     bool
}

type Meshing struct {
	GridMinSize   float64
	MaxGridPoints float64
	Ratio         float64
	Slope         float64
	Curve         float64
	Prune         float64
}

type UQSettings struct {
	EpistemicSamples int
	AleatorySamples  int
}

type Settings struct {
	Meshing Meshing
	UQ      UQSettings
}

type Config struct {
	Mode               string
	Mechanism          string
	Geometry           Geometry
	BoundaryConditions BoundaryConditions
	Submodels          Submodels
	Settings           Settings
}

// Decode validates a loaded document against the McKenna schema and
// extracts it into a Config. The resulting error wraps ErrValidate
// and names the offending field path.
func Decode(d *Document) (*Config, error) {
	dec := &decoder{root: d.Root}
	return dec.decode()
}

// Validate runs Decode for its error only.
func Validate(d *Document) error {
	_, err := Decode(d)
	return err
}

type decoder struct {
	root *doc.Node
}

func (dec *decoder) decode() (*Config, error) {
	cfg := &Config{}
	var err error
	if cfg.Mode, err = dec.reqString(dec.root, "mode", ModeUQ, ModeSingle); err != nil {
		return nil, err
	}
	if cfg.Mechanism, err = dec.reqString(dec.root, "mechanism"); err != nil {
		return nil, err
	}
	if err := dec.geometry(cfg); err != nil {
		return nil, err
	}
	if err := dec.boundaryConditions(cfg); err != nil {
		return nil, err
	}
	if err := dec.submodels(cfg); err != nil {
		return nil, err
	}
	if err := dec.settings(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (dec *decoder) geometry(cfg *Config) error {
	geom, err := dec.reqObject(dec.root, "geometry")
	if err != nil {
		return err
	}
	g := &cfg.Geometry
	if g.Type, err = dec.reqStringAt(geom, "geometry", "type", FreeFlame, ImpingingJet); err != nil {
		return err
	}
	if g.DomainWidth, err = dec.reqNumber(geom, "geometry", "domain_width"); err != nil {
		return err
	}
	if g.BurnerDiameter, err = dec.reqNumber(geom, "geometry", "burner_diameter"); err != nil {
		return err
	}
	return nil
}

func (dec *decoder) boundaryConditions(cfg *Config) error {
	bcNode, err := dec.reqObject(dec.root, "boundary_conditions")
	if err != nil {
		return err
	}
	bc := &cfg.BoundaryConditions
	const at = "boundary_conditions"
	switch cfg.Mode {
	case ModeUQ:
		if bc.BurnerTemperature, err = dec.statField(bcNode, at, "burner_temperature"); err != nil {
			return err
		}
		if bc.StagnationTemperature, err = dec.statField(bcNode, at, "stagnation_temperature"); err != nil {
			return err
		}
		if bc.Fuel, err = dec.reqStringAt(bcNode, at, "fuel"); err != nil {
			return err
		}
		if bc.FlowRates, err = dec.flowRates(bcNode, true); err != nil {
			return err
		}
	case ModeSingle:
		if bc.Composition, err = dec.reqStringAt(bcNode, at, "composition"); err != nil {
			return err
		}
		comp, err := ParseComposition(bc.Composition)
		if err != nil {
			return fmt.Errorf("%w: bad composition string: %w", ErrValidate, err)
		}
		if bc.BurnerTemperature, err = dec.numericField(bcNode, at, "burner_temperature"); err != nil {
			return err
		}
		if bc.StagnationTemperature, err = dec.numericField(bcNode, at, "stagnation_temperature"); err != nil {
			return err
		}
		if bc.FlowRates, err = dec.flowRates(bcNode, false); err != nil {
			return err
		}
		var missing []string
		for _, sp := range comp {
			if _, ok := bc.FlowRates[sp]; !ok {
				missing = append(missing, sp)
			}
		}
		if len(missing) != 0 {
			return fmt.Errorf(
				"%w: composition species missing in flow_rates: %v",
				ErrValidate, missing)
		}
	}
	return nil
}

func (dec *decoder) flowRates(bcNode *doc.Node, expectStat bool) (map[string]Param, error) {
	rates := doc.Get(bcNode, "flow_rates")
	if rates == nil {
		return map[string]Param{}, nil
	}
	if rates.Type != doc.ObjectType {
		return nil, fmt.Errorf("%w: %q must be an object", ErrValidate,
			"boundary_conditions.flow_rates")
	}
	res := make(map[string]Param, len(rates.Fields))
	const at = "boundary_conditions.flow_rates"
	for _, gasNode := range rates.Fields {
		gas := gasNode.String
		var (
			p   Param
			err error
		)
		if expectStat {
			p, err = dec.statField(rates, at, gas)
		} else {
			p, err = dec.numericField(rates, at, gas)
		}
		if err != nil {
			return nil, err
		}
		res[gas] = p
	}
	return res, nil
}

func (dec *decoder) statField(parent *doc.Node, at, key string) (Param, error) {
	path := at + "." + key
	val := doc.Get(parent, key)
	if val == nil {
		return Param{}, fmt.Errorf("%w: %q not found", ErrValidate, path)
	}
	if val.Type != doc.ObjectType {
		return Param{}, fmt.Errorf(
			"%w: %q must be an object in uq mode", ErrValidate, path)
	}
	st := &Stat{}
	var err error
	if st.Distribution, err = dec.reqStringAt(val, path, "distribution", "uniform", "normal"); err != nil {
		return Param{}, err
	}
	switch st.Distribution {
	case "uniform":
		if st.Min, err = dec.reqNumber(val, path, "min"); err != nil {
			return Param{}, err
		}
		if st.Max, err = dec.reqNumber(val, path, "max"); err != nil {
			return Param{}, err
		}
	case "normal":
		if st.Mean, err = dec.reqNumber(val, path, "mean"); err != nil {
			return Param{}, err
		}
		if st.Stdev, err = dec.reqNumber(val, path, "stdev"); err != nil {
			return Param{}, err
		}
	}
	return Param{Stat: st}, nil
}

func (dec *decoder) numericField(parent *doc.Node, at, key string) (Param, error) {
	path := at + "." + key
	val := doc.Get(parent, key)
	if val == nil {
		return Param{}, fmt.Errorf("%w: %q not found", ErrValidate, path)
	}
	f, ok := val.Float()
	if !ok {
		return Param{}, fmt.Errorf(
			"%w: %q must be a number in single mode", ErrValidate, path)
	}
	return Param{Value: f}, nil
}

func (dec *decoder) submodels(cfg *Config) error {
	sub, err := dec.reqObject(dec.root, "submodels")
	if err != nil {
		return err
	}
	sm := &cfg.Submodels
	const at = "submodels"
	if sm.Radiation, err = dec.reqBool(sub, at, "radiation"); err != nil {
		return err
	}
	if sm.Transport, err = dec.reqStringAt(sub, at, "transport",
		MixtureAveraged, Multicomponent, UnityLewisNumber); err != nil {
		return err
	}
	if sm.Soret, err = dec.reqBool(sub, at, "soret"); err != nil {
		return err
	}
	if sm.Soret && sm.Transport != Multicomponent {
		return fmt.Errorf(
			"%w: soret requires multicomponent transport", ErrValidate)
	}
	return nil
}

func (dec *decoder) settings(cfg *Config) error {
	settings, err := dec.reqObject(dec.root, "settings")
	if err != nil {
		return err
	}
	meshNode := doc.Get(settings, "meshing")
	if meshNode == nil || meshNode.Type != doc.ObjectType {
		return fmt.Errorf("%w: %q must be an object", ErrValidate,
			"settings.meshing")
	}
	m := &cfg.Settings.Meshing
	const meshAt = "settings.meshing"
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"grid_min_size", &m.GridMinSize},
		{"max_grid_points", &m.MaxGridPoints},
		{"ratio", &m.Ratio},
		{"slope", &m.Slope},
		{"curve", &m.Curve},
		{"prune", &m.Prune},
	} {
		if *f.dst, err = dec.reqNumber(meshNode, meshAt, f.key); err != nil {
			return err
		}
	}
	if cfg.Mode != ModeUQ {
		return nil
	}
	uqNode := doc.Get(settings, "uq")
	if uqNode == nil || uqNode.Type != doc.ObjectType {
		return fmt.Errorf("%w: %q must be an object", ErrValidate,
			"settings.uq")
	}
	const uqAt = "settings.uq"
	if cfg.Settings.UQ.EpistemicSamples, err = dec.reqInt(uqNode, uqAt, "epistemic_samples"); err != nil {
		return err
	}
	if cfg.Settings.UQ.AleatorySamples, err = dec.reqInt(uqNode, uqAt, "aleatory_samples"); err != nil {
		return err
	}
	return nil
}

func (dec *decoder) reqString(parent *doc.Node, key string, allowed ...string) (string, error) {
	return dec.reqStringAt(parent, "", key, allowed...)
}

func (dec *decoder) reqStringAt(parent *doc.Node, at, key string, allowed ...string) (string, error) {
	path := joinPath(at, key)
	val := doc.Get(parent, key)
	if val == nil {
		return "", fmt.Errorf(
			"%w: missing required field %q", ErrValidate, path)
	}
	if val.Type != doc.StringType {
		return "", fmt.Errorf("%w: %q must be a string", ErrValidate, path)
	}
	if len(allowed) == 0 {
		return val.String, nil
	}
	for _, a := range allowed {
		if val.String == a {
			return val.String, nil
		}
	}
	return "", fmt.Errorf(
		"%w: %q must be one of %v", ErrValidate, path, allowed)
}

func (dec *decoder) reqNumber(parent *doc.Node, at, key string) (float64, error) {
	path := joinPath(at, key)
	val := doc.Get(parent, key)
	if val == nil {
		return 0, fmt.Errorf(
			"%w: missing required field %q", ErrValidate, path)
	}
	f, ok := val.Float()
	if !ok {
		return 0, fmt.Errorf("%w: %q must be a number", ErrValidate, path)
	}
	return f, nil
}

func (dec *decoder) reqInt(parent *doc.Node, at, key string) (int, error) {
	path := joinPath(at, key)
	val := doc.Get(parent, key)
	if val == nil {
		return 0, fmt.Errorf(
			"%w: missing required field %q", ErrValidate, path)
	}
	i, ok := val.Int()
	if !ok {
		return 0, fmt.Errorf("%w: %q must be an integer", ErrValidate, path)
	}
	return int(i), nil
}

func (dec *decoder) reqBool(parent *doc.Node, at, key string) (bool, error) {
	path := joinPath(at, key)
	val := doc.Get(parent, key)
	if val == nil {
		return false, fmt.Errorf(
			"%w: missing required field %q", ErrValidate, path)
	}
	if val.Type != doc.BoolType {
		return false, fmt.Errorf("%w: %q must be a boolean", ErrValidate, path)
	}
	return val.Bool, nil
}

func (dec *decoder) reqObject(parent *doc.Node, key string) (*doc.Node, error) {
	val := doc.Get(parent, key)
	if val == nil {
		return nil, fmt.Errorf(
			"%w: missing required field %q", ErrValidate, key)
	}
	if val.Type != doc.ObjectType {
		return nil, fmt.Errorf("%w: %q must be an object", ErrValidate, key)
	}
	return val, nil
}

func joinPath(at, key string) string {
	if at == "" {
		return key
	}
	return at + "." + key
}
