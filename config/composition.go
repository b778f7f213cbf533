package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseComposition splits a composition string such as
// "CH4: 1, O2: 2, N2: 7.52" into its species names.
func ParseComposition(s string) ([]string, error) {
	if s == "" {
		return nil, fmt.Errorf("composition string is empty")
	}
	var species []string
	for _, component := range strings.Split(s, ",") {
		component = strings.TrimSpace(component)
		name, _, ok := strings.Cut(component, ":")
		if !ok {
			return nil, fmt.Errorf(
				"bad component %q: missing ':'", component)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf(
				"bad component %q: empty species name", component)
		}
		species = append(species, name)
	}
	return species, nil
}

// SlpmToNdot converts a volumetric flow rate in standard litres per
// minute to a molar flow rate in mol/s, assuming ideal gas behavior
// at 1 bar and 273.15 K.
func SlpmToNdot(slpm float64) float64 {
	return (slpm * 0.001 * 1.0e+05) / (60.0 * 8.314 * 273.15)
}

// CalculateComposition builds a composition string from volumetric
// flow rates, normalized by the fuel's rate. Species appear in
// sorted order.
func CalculateComposition(flowRates map[string]float64, fuel string) (string, error) {
	ref, ok := flowRates[fuel]
	if !ok {
		return "", fmt.Errorf("fuel %q has no flow rate", fuel)
	}
	if ref == 0 {
		return "", fmt.Errorf("fuel %q has zero flow rate", fuel)
	}
	names := make([]string, 0, len(flowRates))
	for name := range flowRates {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+
			strconv.FormatFloat(flowRates[name]/ref, 'g', -1, 64))
	}
	return strings.Join(parts, ","), nil
}
