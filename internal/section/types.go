package section

import "fmt"

// Section represents a girder cross-section defined by vertices.
// The section is defined in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`

	// Section geometry defined by vertices (in mm)
	// Vertices should be defined counter-clockwise for the outer boundary
	// The section is assumed to be a simple polygon (no holes)
	Vertices []Point `json:"vertices" yaml:"vertices" toml:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x"` // mm
	Y float64 `json:"y" yaml:"y" toml:"y"` // mm
}

// SectionProperties holds calculated geometric properties
type SectionProperties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Second moments of area about the centroidal axes
	Ix float64 // About the horizontal axis (mm⁴), governs vertical bending
	Iy float64 // About the vertical axis (mm⁴)

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// AreaSI returns the gross area in m².
func (p *SectionProperties) AreaSI() float64 {
	return p.Area * 1e-6
}

// InertiaSI returns Ix in m⁴.
func (p *SectionProperties) InertiaSI() float64 {
	return p.Ix * 1e-12
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if area, _, _ := s.calculateAreaAndCentroid(); area == 0 {
		return &ValidationError{"section has zero area"}
	}
	for i, v := range s.Vertices {
		j := (i + 1) % len(s.Vertices)
		if v == s.Vertices[j] {
			return &ValidationError{msg: fmt.Sprintf("vertices %d and %d coincide", i+1, j+1)}
		}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
