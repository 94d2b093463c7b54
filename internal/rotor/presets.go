package rotor

import "sort"

// Built-in reference rotors. Chord and twist stations are coarse samples of
// the public IEA reference turbine designs, enough for solidity and loading
// distributions; full airfoil tables are out of scope.
var presets = map[string]*Definition{
	"iea15mw": {
		Name:      "IEA-15-240-RWT",
		Radius:    120.0,
		HubHeight: 150.0,
		Blades:    3,
		RatedTSR:  9.0,
		Stations: []Station{
			{Mu: 0.05, Chord: 5.20, Twist: 0.2705},
			{Mu: 0.15, Chord: 5.71, Twist: 0.2251},
			{Mu: 0.25, Chord: 5.77, Twist: 0.1742},
			{Mu: 0.35, Chord: 5.35, Twist: 0.1306},
			{Mu: 0.50, Chord: 4.54, Twist: 0.0832},
			{Mu: 0.65, Chord: 3.79, Twist: 0.0498},
			{Mu: 0.80, Chord: 3.01, Twist: 0.0241},
			{Mu: 0.92, Chord: 2.22, Twist: 0.0077},
			{Mu: 1.00, Chord: 0.70, Twist: -0.0020},
		},
	},
	"iea10mw": {
		Name:      "IEA-10-198-RWT",
		Radius:    99.0,
		HubHeight: 119.0,
		Blades:    3,
		RatedTSR:  10.5,
		Stations: []Station{
			{Mu: 0.05, Chord: 4.60, Twist: 0.2478},
			{Mu: 0.18, Chord: 5.55, Twist: 0.1916},
			{Mu: 0.30, Chord: 5.26, Twist: 0.1342},
			{Mu: 0.45, Chord: 4.45, Twist: 0.0848},
			{Mu: 0.60, Chord: 3.66, Twist: 0.0475},
			{Mu: 0.75, Chord: 2.95, Twist: 0.0219},
			{Mu: 0.90, Chord: 2.22, Twist: 0.0058},
			{Mu: 1.00, Chord: 0.58, Twist: -0.0031},
		},
	},
}

// GetPreset returns the named built-in rotor, nil if unknown.
func GetPreset(name string) *Definition {
	return presets[name]
}

// ListPresets returns the built-in rotor names, nil if none.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
