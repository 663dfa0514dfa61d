package section

import (
	"math"
)

// Rectangle returns a b x h rectangular section with its bottom-left corner
// at the origin.
func Rectangle(name string, b, h float64) *Section {
	return &Section{
		Name: name,
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: b, Y: 0},
			{X: b, Y: h},
			{X: 0, Y: h},
		},
	}
}

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *SectionProperties {
	props := &SectionProperties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = s.calculateAreaAndCentroid()

	// Second moments about the origin, shifted to the centroid
	ixo, iyo := s.calculateOriginInertia()
	props.Ix = ixo - props.Area*props.CentroidY*props.CentroidY
	props.Iy = iyo - props.Area*props.CentroidX*props.CentroidX

	return props
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// calculateOriginInertia returns the second moments of area about the
// global X and Y axes. Clockwise vertex order is handled by taking the sign
// of the enclosed area.
func (s *Section) calculateOriginInertia() (ix, iy float64) {
	n := len(s.Vertices)
	var signed float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := s.Vertices[i].X, s.Vertices[i].Y
		xj, yj := s.Vertices[j].X, s.Vertices[j].Y
		cross := xi*yj - xj*yi
		signed += cross
		ix += cross * (yi*yi + yi*yj + yj*yj)
		iy += cross * (xi*xi + xi*xj + xj*xj)
	}

	ix /= 12
	iy /= 12
	if signed < 0 {
		ix, iy = -ix, -iy
	}
	return ix, iy
}

// SectionModulus returns the elastic section moduli (mm³) for the extreme
// top and bottom fibres.
func (p *SectionProperties) SectionModulus() (top, bottom float64) {
	yt := p.MaxY - p.CentroidY
	yb := p.CentroidY - p.MinY
	if yt > 0 {
		top = p.Ix / yt
	}
	if yb > 0 {
		bottom = p.Ix / yb
	}
	return top, bottom
}
