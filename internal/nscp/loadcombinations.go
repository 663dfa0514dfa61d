package nscp

import "fmt"

// LoadCombination represents a gravity load combination applied to the
// dead and live load effects of a beam.
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead float64 // D - Dead load
	Live float64 // L - Live load (includes vehicle loads)
}

// ServiceCombination is the unfactored D + L case used for reactions at
// service level (bearing design, equilibrium checks).
var ServiceCombination = LoadCombination{
	ID:          "S",
	Description: "1.0D + 1.0L",
	Dead:        1.0,
	Live:        1.0,
}

// GravityCombinations are the NSCP 2015 Section 203.3.1 combinations that
// remain when only dead and live loads act on the superstructure.
var GravityCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.0L",
		Dead:        1.2,
		Live:        1.0,
	},
	{
		ID:          "6",
		Description: "0.9D",
		Dead:        0.9,
	},
}

// LoadEffects holds unfactored effects from each load type.
// The unit is whatever the caller uses (N/m for line loads, N for point loads).
type LoadEffects struct {
	Dead float64
	Live float64
}

// Factored returns the factored effect for the combination.
func (lc LoadCombination) Factored(effects LoadEffects) float64 {
	return lc.Dead*effects.Dead + lc.Live*effects.Live
}

// Governing finds the combination producing the largest factored effect.
func Governing(effects LoadEffects, combinations []LoadCombination) (float64, LoadCombination) {
	var maxEffect float64
	var governing LoadCombination

	for _, combo := range combinations {
		u := combo.Factored(effects)
		if u > maxEffect {
			maxEffect = u
			governing = combo
		}
	}

	return maxEffect, governing
}

// FindCombination looks up a combination by ID. "S" selects the service
// combination and "governing" is resolved by the caller with Governing.
func FindCombination(id string) (LoadCombination, error) {
	if id == ServiceCombination.ID || id == "" {
		return ServiceCombination, nil
	}
	for _, combo := range GravityCombinations {
		if combo.ID == id {
			return combo, nil
		}
	}
	return LoadCombination{}, fmt.Errorf("unknown load combination %q", id)
}
