package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Unit weight of normal-weight reinforced concrete (Table 204-1)
	GammaConcrete = 24.0 // kN/m³

	// Unit weight of structural steel (Table 204-1)
	GammaSteel = 77.0 // kN/m³
)

// ConcreteModulus returns Ec = 4700√f'c in MPa for normal-weight concrete
// NSCP 2015 Section 419.2.2.1
func ConcreteModulus(fc float64) float64 {
	if fc <= 0 {
		return 0
	}
	return 4700 * math.Sqrt(fc)
}

// SelfWeight returns the line load (N/m) of a member with the given gross
// area (m²) and unit weight (kN/m³).
func SelfWeight(area, gamma float64) float64 {
	return area * gamma * 1000
}
